package lessons

import (
	"testing"
	"testing/fstest"

	"github.com/robbyt/go-fundamentos/engines/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	c, err := Default()
	require.NoError(t, err)

	again, err := Default()
	require.NoError(t, err)
	require.Same(t, c, again)

	var names []string
	for _, l := range c.List() {
		names = append(names, l.Name)
	}
	require.Equal(t, []string{"variaveis", "if-else", "loop", "funcao"}, names)
}

func TestCatalog_Get(t *testing.T) {
	t.Parallel()

	c, err := Default()
	require.NoError(t, err)

	tests := []struct {
		name     string
		ref      string
		wantName string
		wantErr  bool
	}{
		{name: "by name", ref: "loop", wantName: "loop"},
		{name: "by name ignoring case", ref: "FUNCAO", wantName: "funcao"},
		{name: "by order", ref: "2", wantName: "if-else"},
		{name: "by file stem", ref: "1-variaveis", wantName: "variaveis"},
		{name: "unknown name", ref: "classes", wantErr: true},
		{name: "unknown order", ref: "9", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			l, err := c.Get(tt.ref)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrLessonNotFound)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, l.Name)
		})
	}
}

func TestCatalog_Expected(t *testing.T) {
	t.Parallel()

	c, err := Default()
	require.NoError(t, err)

	want := map[string][]string{
		"variaveis": {"Maior de idade", "Leonardo é casado"},
		"if-else":   {"Você é maior de idade.", "Nota: C", "Menor de idade"},
		"loop":      {"Banana", "Maça", "Pera", "Goiaba", "Uva", "Manga", "0", "1", "2", "3", "4"},
		"funcao":    {"Ola Fulano!", "Ola Beltrano!", "20"},
	}

	for name, lines := range want {
		l, err := c.Get(name)
		require.NoError(t, err)
		assert.Equal(t, lines, l.Expected, name)
	}
}

func TestCatalog_Source(t *testing.T) {
	t.Parallel()

	c, err := Default()
	require.NoError(t, err)

	l, err := c.Get("funcao")
	require.NoError(t, err)

	tests := []struct {
		engine  types.Type
		path    string
		snippet string
	}{
		{engine: types.Starlark, path: "scripts/starlark/4-funcao.star", snippet: "def soma(x, y):"},
		{engine: types.Risor, path: "scripts/risor/4-funcao.risor", snippet: "func soma(x, y) {"},
	}

	for _, tt := range tests {
		t.Run(string(tt.engine), func(t *testing.T) {
			assert.Equal(t, tt.path, l.ScriptPath(tt.engine))

			src, err := c.Source(l, tt.engine)
			require.NoError(t, err)
			assert.Contains(t, src, tt.snippet)
			assert.Contains(t, src, "Parâmetros de função", "teaching comments are part of the source")

			ldr, err := c.Loader(l, tt.engine)
			require.NoError(t, err)
			assert.Equal(t, "/"+tt.path, ldr.GetSourceURL().Path)
		})
	}
}

func TestLoad_Invalid(t *testing.T) {
	t.Parallel()

	scripts := func(name string, order string) fstest.MapFS {
		return fstest.MapFS{
			"scripts/starlark/" + order + "-" + name + ".star": {Data: []byte(`print("x")`)},
			"scripts/risor/" + order + "-" + name + ".risor":   {Data: []byte(`print("x")`)},
		}
	}
	with := func(fsys fstest.MapFS, manifest string) fstest.MapFS {
		fsys["manifest.yaml"] = &fstest.MapFile{Data: []byte(manifest)}
		return fsys
	}

	tests := []struct {
		name string
		fsys fstest.MapFS
	}{
		{name: "missing manifest", fsys: scripts("a", "1")},
		{name: "malformed yaml", fsys: with(scripts("a", "1"), "lessons: [")},
		{name: "no lessons", fsys: with(scripts("a", "1"), "lessons: []")},
		{
			name: "missing expected output",
			fsys: with(scripts("a", "1"), "lessons:\n  - name: a\n    order: 1\n"),
		},
		{
			name: "missing risor script",
			fsys: with(fstest.MapFS{
				"scripts/starlark/1-a.star": {Data: []byte(`print("x")`)},
			}, "lessons:\n  - name: a\n    order: 1\n    expected: [x]\n"),
		},
		{
			name: "duplicate name",
			fsys: with(scripts("a", "1"),
				"lessons:\n  - name: a\n    order: 1\n    expected: [x]\n  - name: a\n    order: 2\n    expected: [x]\n"),
		},
		{
			name: "zero order",
			fsys: with(scripts("a", "0"), "lessons:\n  - name: a\n    order: 0\n    expected: [x]\n"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c, err := Load(tt.fsys)
			require.ErrorIs(t, err, ErrInvalidManifest)
			require.Nil(t, c)
		})
	}
}

func TestLoad_SortsByOrder(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"manifest.yaml": {Data: []byte(`
lessons:
  - name: b
    order: 2
    expected: ["2"]
  - name: a
    order: 1
    expected: ["1"]
`)},
		"scripts/starlark/1-a.star":  {Data: []byte(`print(1)`)},
		"scripts/starlark/2-b.star":  {Data: []byte(`print(2)`)},
		"scripts/risor/1-a.risor":    {Data: []byte(`print(1)`)},
		"scripts/risor/2-b.risor":    {Data: []byte(`print(2)`)},
	}

	c, err := Load(fsys)
	require.NoError(t, err)

	list := c.List()
	require.Len(t, list, 2)
	assert.Equal(t, "a", list[0].Name)
	assert.Equal(t, "2-b", list[1].String())
}
