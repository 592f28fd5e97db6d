package exports

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const componentsIndex = `// Components index
export { Header } from './Header.js';
export { Counter } from './Counter.js';
`

func TestParseEntries(t *testing.T) {
	f := Parse(`// comment
export { Header } from './Header.js';
export { default as Footer, Nav as TopNav } from "./Footer.js"
export * from './helpers.js';
export * as api from './api.js';
export {
  formatDate,
  debounce,
} from './time.js';
export default App;
`)

	entries := f.Entries()
	require.Len(t, entries, 5)

	require.Equal(t, []string{"Header"}, entries[0].Names())
	require.Equal(t, []string{"Footer", "TopNav"}, entries[1].Names())
	require.Equal(t, "./Footer.js", entries[1].Source)
	require.True(t, entries[2].Star)
	require.Nil(t, entries[2].Names())
	require.Equal(t, []string{"api"}, entries[3].Names())
	require.Equal(t, []string{"formatDate", "debounce"}, entries[4].Names())
	require.Equal(t, "./time.js", entries[4].Source)
}

func TestRoundTripIsLossless(t *testing.T) {
	inputs := []string{
		componentsIndex,
		"export {\n  a,\n  b\n} from './ab.js';\n\n// trailing note\n",
		"const x = {\n  y: 1,\n};\nexport default x;\n",
	}
	for _, in := range inputs {
		require.Equal(t, in, Parse(in).String())
	}
}

func TestAddAfterLastEntry(t *testing.T) {
	f := Parse(componentsIndex)

	require.True(t, f.Add(Named("Button", "./Button.js")))
	require.Equal(t, componentsIndex+"export { Button } from './Button.js';\n", f.String())
}

func TestAddKeepsTrailingComments(t *testing.T) {
	in := `export { Header } from './Header.js';

// Add new components above this line.
`
	f := Parse(in)
	require.True(t, f.Add(Named("Button", "./Button.js")))
	require.Equal(t, `export { Header } from './Header.js';
export { Button } from './Button.js';

// Add new components above this line.
`, f.String())
}

func TestAddWithoutEntries(t *testing.T) {
	t.Run("comment only", func(t *testing.T) {
		f := Parse("// Stores\n\n\n")
		require.True(t, f.Add(Named("cartStore", "./cart.js")))
		require.Equal(t, "// Stores\nexport { cartStore } from './cart.js';\n\n\n", f.String())
	})

	t.Run("empty file", func(t *testing.T) {
		f := Parse("")
		require.True(t, f.Add(Named("slugify", "./slugify.js")))
		require.Equal(t, "export { slugify } from './slugify.js';\n", f.String())
	})
}

func TestAddIsIdempotent(t *testing.T) {
	f := Parse(componentsIndex)

	require.False(t, f.Add(Named("Header", "./Header.js")))
	require.False(t, f.Add(Named("Header", "./OtherHeader.js")), "duplicate name")
	require.False(t, f.Add(Named("Renamed", "./Counter")), "duplicate source without extension")
	require.Equal(t, componentsIndex, f.String())
}

func TestEntryString(t *testing.T) {
	require.Equal(t, "export { Button } from './Button.js';", Named("Button", "./Button.js").String())
	require.Equal(t, "export * from './x.js';", Entry{Star: true, Source: "./x.js"}.String())
	require.Equal(t, "export * as ns from './x.js';", Entry{Star: true, Namespace: "ns", Source: "./x.js"}.String())
}

func TestHasSource(t *testing.T) {
	f := Parse(componentsIndex)
	require.True(t, f.HasSource("./Header.js"))
	require.True(t, f.HasSource("Header"))
	require.False(t, f.HasSource("./Footer.js"))
	require.True(t, f.Has("Counter"))
	require.False(t, f.Has("Footer"))
}

func TestParseEntriesWithTrailingComments(t *testing.T) {
	in := `export { Button } from './Button.js'; // primary button
export * from './icons.js'; /* generated */
export {
  Card, // layout
  Panel,
} from './layout.js';
export { Url } from 'https://cdn.example.com/x.js'; // quoted // stays
`
	f := Parse(in)

	entries := f.Entries()
	require.Len(t, entries, 4)
	require.Equal(t, []string{"Button"}, entries[0].Specifiers)
	require.True(t, entries[1].Star)
	require.Equal(t, []string{"Card", "Panel"}, entries[2].Specifiers)
	require.Equal(t, "https://cdn.example.com/x.js", entries[3].Source)

	require.False(t, f.Add(Named("Button", "./Button.js")))
	require.Equal(t, in, f.String())
}

func TestAddPreservesCRLF(t *testing.T) {
	in := "export { A } from './A.js';\r\nexport { B } from './B.js';\r\n"
	f := Parse(in)

	require.Len(t, f.Entries(), 2)
	require.True(t, f.Add(Named("C", "./C.js")))
	require.Equal(t, in+"export { C } from './C.js';\r\n", f.String())
}
