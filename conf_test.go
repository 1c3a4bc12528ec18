package conf

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseFile(t *testing.T) {
	t.Run("parses an existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "app.conf")
		if err := os.WriteFile(path, []byte("a = 1\n"), 0o600); err != nil {
			t.Fatal(err)
		}

		data, errs := ParseFile(path)
		if len(errs) != 0 {
			t.Fatalf("ParseFile() errors = %v", errs)
		}
		if !data["a"].Equal(Int(1)) {
			t.Errorf("a = %v, want 1", data["a"])
		}
	})

	t.Run("missing file reports an external error", func(t *testing.T) {
		_, errs := ParseFile(filepath.Join(t.TempDir(), "nope.conf"))
		if len(errs) != 1 || errs[0].Kind != ErrExternal {
			t.Fatalf("errors = %v, want one ErrExternal", errs)
		}
		if errs[0].Unwrap() == nil {
			t.Error("expected the external error to carry its cause")
		}
	})
}

func TestParseOrCreateFile(t *testing.T) {
	defaults := Data{
		"a": String("f"),
		"b": Float(1.0),
		"c": Bool(false),
	}

	t.Run("creates the file and returns the defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "app.conf")

		data, errs := ParseOrCreateFile(path, defaults)
		if len(errs) != 0 {
			t.Fatalf("errors = %v, want none", errs)
		}
		if !data.Equal(defaults) {
			t.Errorf("data = %v, want the defaults", data)
		}
		if _, err := os.Stat(path); err != nil {
			t.Errorf("expected the file to exist: %v", err)
		}

		// A second call parses what the first one wrote.
		again, errs := ParseOrCreateFile(path, Data{})
		if len(errs) != 0 {
			t.Fatalf("second call errors = %v, want none", errs)
		}
		if !again.Equal(defaults) {
			t.Errorf("second call = %v, want the persisted defaults", again)
		}
	})

	t.Run("parses an existing file instead of the defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "app.conf")
		if err := os.WriteFile(path, []byte("a = \"custom\"\n"), 0o600); err != nil {
			t.Fatal(err)
		}

		data, errs := ParseOrCreateFile(path, defaults)
		if len(errs) != 0 {
			t.Fatalf("errors = %v, want none", errs)
		}
		if !data["a"].Equal(String("custom")) {
			t.Errorf("a = %v, want the value from disk", data["a"])
		}
	})

	t.Run("write failure still returns usable defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "app.conf")

		data, errs := ParseOrCreateFile(path, defaults)
		if len(errs) != 1 || errs[0].Kind != ErrExternal {
			t.Fatalf("errors = %v, want one ErrExternal", errs)
		}
		if !data.Equal(defaults) {
			t.Errorf("data = %v, want the defaults despite the write failure", data)
		}
	})

	t.Run("returned defaults are a copy", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "app.conf")

		data, _ := ParseOrCreateFile(path, defaults)
		data["a"] = Int(99)
		if !defaults["a"].Equal(String("f")) {
			t.Error("expected the caller's defaults to be unchanged")
		}
	})
}

func TestConfigPath(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)

	dir, err := ConfigPath("myapp")
	if err != nil {
		t.Fatalf("ConfigPath() error = %v", err)
	}
	if dir != filepath.Join(tmp, "myapp") {
		t.Errorf("ConfigPath() = %q, want %q", dir, filepath.Join(tmp, "myapp"))
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Errorf("expected the directory to be created: %v", err)
	}
}

func TestParseOrCreate(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	defaults := Data{"width": Int(1024)}

	data, errs := ParseOrCreate("myapp", defaults)
	if len(errs) != 0 {
		t.Fatalf("errors = %v, want none", errs)
	}
	if !data.Equal(defaults) {
		t.Errorf("data = %v, want the defaults", data)
	}

	path, ok := FindFile("myapp")
	if !ok {
		t.Fatal("expected FindFile to locate the created config")
	}

	again, errs := ParseOrCreateFile(path, Data{})
	if len(errs) != 0 || !again.Equal(defaults) {
		t.Errorf("re-parse = %v (errors %v), want the defaults", again, errs)
	}
}

func TestWriteApp(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)

	data := Data{"a": Int(1)}
	if err := WriteApp("myapp", data); err != nil {
		t.Fatalf("WriteApp() error = %v", err)
	}

	parsed, errs := ParseFile(filepath.Join(tmp, "myapp", "myapp.conf"))
	if len(errs) != 0 || !parsed.Equal(data) {
		t.Errorf("parsed = %v (errors %v), want %v", parsed, errs, data)
	}
}

func TestFindFile(t *testing.T) {
	setup := func(t *testing.T) (cfg, home string) {
		t.Helper()
		cfg, home = t.TempDir(), t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", cfg)
		t.Setenv("HOME", home)
		return cfg, home
	}

	write := func(t *testing.T, path string) {
		t.Helper()
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("a = 1\n"), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	t.Run("not found", func(t *testing.T) {
		setup(t)
		if path, ok := FindFile("myapp"); ok {
			t.Errorf("FindFile() = %q, want not found", path)
		}
	})

	t.Run("falls back to the home-directory file", func(t *testing.T) {
		_, home := setup(t)
		want := filepath.Join(home, "myapp.conf")
		write(t, want)

		path, ok := FindFile("myapp")
		if !ok || path != want {
			t.Errorf("FindFile() = %q, %v, want %q", path, ok, want)
		}
	})

	t.Run("dotdir beats the plain home file", func(t *testing.T) {
		_, home := setup(t)
		write(t, filepath.Join(home, "myapp.conf"))
		want := filepath.Join(home, ".myapp", "myapp.conf")
		write(t, want)

		path, ok := FindFile("myapp")
		if !ok || path != want {
			t.Errorf("FindFile() = %q, %v, want %q", path, ok, want)
		}
	})

	t.Run("config directory has the highest priority", func(t *testing.T) {
		cfg, home := setup(t)
		write(t, filepath.Join(home, "myapp.conf"))
		write(t, filepath.Join(home, ".myapp", "myapp.conf"))
		want := filepath.Join(cfg, "myapp", "myapp.conf")
		write(t, want)

		path, ok := FindFile("myapp")
		if !ok || path != want {
			t.Errorf("FindFile() = %q, %v, want %q", path, ok, want)
		}
	})
}
