package stylesheet

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zen-explorer/zen-explorer/internal/manifest"
	"github.com/zen-explorer/zen-explorer/internal/profile"
)

func boolPtr(v bool) *bool { return &v }

type memFiles map[string]string

func (m memFiles) read(path string) (string, bool, error) {
	content, ok := m[path]
	return content, ok, nil
}

func (m memFiles) apply(writes []Write) {
	for _, w := range writes {
		m[w.Path] = string(w.Data)
	}
}

func testPaths() profile.Paths {
	return profile.DefaultPaths(filepath.Join("profiles", "abc.default"))
}

func TestComposeAuroraExample(t *testing.T) {
	m := manifest.New()
	m.Set("aurora", manifest.Record{ChromeTargets: []string{"a.css"}, Enabled: boolPtr(true)})

	composed := Compose(m)
	require.Equal(t, `@import url("zen-explorer-themes/aurora/a.css");`, composed.Chrome)
	require.Equal(t, "", composed.Content)
}

func TestComposeSkipsDisabledAndKeepsOrder(t *testing.T) {
	m := manifest.New()
	m.Set("aurora", manifest.Record{ChromeTargets: []string{"a.css"}, Enabled: boolPtr(true)})
	m.Set("frost", manifest.Record{ChromeTargets: []string{"f1.css", "f2.css"}, ContentTargets: []string{"c.css"}})

	before := Compose(m)
	require.Equal(t, "@import url(\"zen-explorer-themes/aurora/a.css\");\n"+
		"@import url(\"zen-explorer-themes/frost/f1.css\");\n"+
		"@import url(\"zen-explorer-themes/frost/f2.css\");", before.Chrome)
	require.Equal(t, before, Compose(m))

	record, _ := m.Get("aurora")
	m.Set("aurora", record.WithEnabled(false))
	disabled := Compose(m)
	require.NotContains(t, disabled.Chrome, "aurora")
	require.Equal(t, []string{"aurora", "frost"}, m.IDs())

	record, _ = m.Get("aurora")
	m.Set("aurora", record.WithEnabled(true))
	require.Equal(t, before, Compose(m))
}

func TestComposeEmpty(t *testing.T) {
	require.Equal(t, Composed{}, Compose(manifest.New()))
}

func TestContainsThemeImport(t *testing.T) {
	content := "/* mine */\n@import url(\"zen-explorer-themes/aurora/a.css\");\r\n"
	require.True(t, ContainsThemeImport(content, "aurora"))
	require.False(t, ContainsThemeImport(content, "aur"))
	require.False(t, ContainsThemeImport(content, "frost"))
	require.False(t, IsThemeImport("/* @import url(\"zen-explorer-themes/aurora/a.css\") */"))
	require.True(t, IsThemeImport("  @import 'zen-explorer-themes/x/y.css';"))
}

func TestParseStrategy(t *testing.T) {
	for input, want := range map[string]Strategy{"": StrategyAuto, "auto": StrategyAuto, " inject ": StrategyInject, "overwrite": StrategyOverwrite} {
		got, err := ParseStrategy(input)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err := ParseStrategy("merge")
	require.Error(t, err)

	_, err = NewWriter(StrategyAuto)
	require.Error(t, err)
}

func TestInjectCreatesFilesOnEmptyProfile(t *testing.T) {
	paths := testPaths()
	files := memFiles{}
	composed := Composed{Chrome: `@import url("zen-explorer-themes/aurora/a.css");`}

	writes, err := InjectWriter{}.Plan(paths, composed, files.read)
	require.NoError(t, err)
	files.apply(writes)

	require.Equal(t, composed.Chrome, files[paths.GeneratedChrome])
	require.Equal(t, "", files[paths.GeneratedContent])
	require.Equal(t, InjectLine(profile.GeneratedChromeFileName)+"\n", files[paths.UserChrome])
	require.Equal(t, InjectLine(profile.GeneratedContentFileName)+"\n", files[paths.UserContent])
	_, hasBackup := files[paths.UserChrome+BackupSuffix]
	require.False(t, hasBackup)
}

func TestInjectBacksUpOnceAndNeverDuplicates(t *testing.T) {
	paths := testPaths()
	files := memFiles{paths.UserChrome: "#nav-bar { color: red; }\n"}
	composed := Composed{Chrome: `@import url("zen-explorer-themes/aurora/a.css");`}

	writes, err := InjectWriter{}.Plan(paths, composed, files.read)
	require.NoError(t, err)
	files.apply(writes)

	require.Equal(t, "#nav-bar { color: red; }\n", files[paths.UserChrome+BackupSuffix])
	require.Equal(t, InjectLine(profile.GeneratedChromeFileName)+"\n#nav-bar { color: red; }\n", files[paths.UserChrome])

	again, err := InjectWriter{}.Plan(paths, composed, files.read)
	require.NoError(t, err)
	require.Empty(t, again)

	files[paths.UserChrome] = "#nav-bar { color: blue; }\n"
	writes, err = InjectWriter{}.Plan(paths, composed, files.read)
	require.NoError(t, err)
	for _, w := range writes {
		require.NotEqual(t, WriteBackup, w.Kind)
	}
	files.apply(writes)
	require.Equal(t, "#nav-bar { color: red; }\n", files[paths.UserChrome+BackupSuffix])
}

func TestInjectAfterCharset(t *testing.T) {
	got := injectInto("@charset \"UTF-8\";\nbody {}\n", "@import url(\"x.css\");")
	require.Equal(t, "@charset \"UTF-8\";\n@import url(\"x.css\");\nbody {}\n", got)
}

func TestInjectRewritesOnlyChangedGeneratedFile(t *testing.T) {
	paths := testPaths()
	files := memFiles{}
	writes, err := InjectWriter{}.Plan(paths, Composed{}, files.read)
	require.NoError(t, err)
	files.apply(writes)

	writes, err = InjectWriter{}.Plan(paths, Composed{Content: "x"}, files.read)
	require.NoError(t, err)
	require.Len(t, writes, 1)
	require.Equal(t, paths.GeneratedContent, writes[0].Path)
	require.Equal(t, WriteGenerated, writes[0].Kind)
}

func TestOverwritePreservesUserLines(t *testing.T) {
	paths := testPaths()
	files := memFiles{paths.UserChrome: "#nav-bar { color: red; }\n"}
	composed := Composed{Chrome: `@import url("zen-explorer-themes/aurora/a.css");`}

	writes, err := OverwriteWriter{}.Plan(paths, composed, files.read)
	require.NoError(t, err)
	files.apply(writes)

	want := composed.Chrome + "\n\n" + PreservedDelimiter + "\n#nav-bar { color: red; }\n"
	require.Equal(t, want, files[paths.UserChrome])
	_, contentWritten := files[paths.UserContent]
	require.False(t, contentWritten)

	again, err := OverwriteWriter{}.Plan(paths, composed, files.read)
	require.NoError(t, err)
	require.Empty(t, again)

	writes, err = OverwriteWriter{}.Plan(paths, Composed{}, files.read)
	require.NoError(t, err)
	files.apply(writes)
	require.Equal(t, PreservedDelimiter+"\n#nav-bar { color: red; }\n", files[paths.UserChrome])
}

func TestPreservedContentStripsToolLines(t *testing.T) {
	content := "\n" + `@import url("zen-explorer-themes/old/x.css");` + "\n" +
		PreservedDelimiter + "\n" +
		InjectLine(profile.GeneratedChromeFileName) + "\n" +
		"a {}  \n\nb {}\n\n"
	require.Equal(t, "a {}\n\nb {}", PreservedContent(content))
	require.Equal(t, "", RenderOverwrite("", ""))
	require.Equal(t, "x", RenderOverwrite("x", ""))
}

func TestDetect(t *testing.T) {
	paths := testPaths()
	legacy := `@import url("zen-explorer-themes/aurora/a.css");`

	cases := []struct {
		name           string
		files          memFiles
		manifestExists bool
		want           Strategy
	}{
		{name: "empty profile", files: memFiles{}, want: StrategyInject},
		{name: "generated file present", files: memFiles{paths.GeneratedContent: "", paths.UserChrome: legacy}, manifestExists: true, want: StrategyInject},
		{name: "legacy overwrite profile", files: memFiles{paths.UserChrome: legacy}, manifestExists: true, want: StrategyOverwrite},
		{name: "imports without manifest", files: memFiles{paths.UserChrome: legacy}, want: StrategyInject},
		{name: "legacy profile with hand-written css only", files: memFiles{paths.UserContent: "a {}"}, manifestExists: true, want: StrategyOverwrite},
		{name: "legacy profile with every theme disabled", files: memFiles{paths.UserChrome: ""}, manifestExists: true, want: StrategyOverwrite},
		{name: "legacy profile with preserved block", files: memFiles{paths.UserChrome: PreservedDelimiter + "\n#nav-bar {}\n"}, manifestExists: true, want: StrategyOverwrite},
		{name: "generated files deleted", files: memFiles{paths.UserChrome: InjectLine(profile.GeneratedChromeFileName) + "\n"}, manifestExists: true, want: StrategyInject},
		{name: "hand-written css without manifest", files: memFiles{paths.UserContent: "a {}"}, want: StrategyInject},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Detect(paths, tc.files.read, tc.manifestExists)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)

			writer, err := Resolve(StrategyAuto, paths, tc.files.read, tc.manifestExists)
			require.NoError(t, err)
			require.Equal(t, tc.want, writer.Strategy())
		})
	}
}

func TestDetectPropagatesReadErrors(t *testing.T) {
	boom := errors.New("boom")
	_, err := Detect(testPaths(), func(string) (string, bool, error) { return "", false, boom }, true)
	require.ErrorIs(t, err, boom)
}

func TestInjectConvertsOverwriteProfile(t *testing.T) {
	paths := testPaths()
	legacy := `@import url("zen-explorer-themes/aurora/a.css");` + "\n\n" + PreservedDelimiter + "\n#nav-bar {}\n"
	files := memFiles{paths.UserChrome: legacy}
	composed := Composed{Chrome: `@import url("zen-explorer-themes/aurora/a.css");`}

	writes, err := InjectWriter{}.Plan(paths, composed, files.read)
	require.NoError(t, err)
	files.apply(writes)

	require.Equal(t, legacy, files[paths.UserChrome+BackupSuffix])
	require.Equal(t, InjectLine(profile.GeneratedChromeFileName)+"\n#nav-bar {}\n", files[paths.UserChrome])
	require.False(t, ContainsThemeImport(files[paths.UserChrome], "aurora"))

	again, err := InjectWriter{}.Plan(paths, composed, files.read)
	require.NoError(t, err)
	require.Empty(t, again)
}
