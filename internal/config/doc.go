// Package config manages user-level settings stored at ~/.smoothjs/config.yaml.
// Values can also come from SMOOTHJS_* environment variables. Settings seed the
// defaults of the create and validate commands: the framework version range,
// a local framework checkout to link against, and validator exclusions.
package config
