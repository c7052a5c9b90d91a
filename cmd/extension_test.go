package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestExtensionMechanism(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("the test extension is a shell script")
	}
	tempDir := t.TempDir()

	script := "#!/bin/sh\n" +
		"echo \"args=$*\"\n" +
		"echo \"" + EnvStoreFile + "=$" + EnvStoreFile + "\"\n" +
		"echo \"" + EnvLang + "=$" + EnvLang + "\"\n" +
		"exit 3\n"
	if err := os.WriteFile(filepath.Join(tempDir, "fra-hello"), []byte(script), 0755); err != nil {
		t.Fatalf("Failed to write fra-hello: %v", err)
	}
	t.Setenv("PATH", tempDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	t.Setenv(EnvStoreFile, filepath.Join(tempDir, "records.json"))
	t.Setenv(EnvLang, "ko")

	var out bytes.Buffer
	old := stdout
	stdout = &out
	defer func() { stdout = old }()

	found, code := RunExtension("hello", []string{"a", "b"})
	if !found {
		t.Fatalf("RunExtension(hello) did not find fra-hello")
	}
	if code != 3 {
		t.Errorf("RunExtension(hello) exit code = %d, want 3", code)
	}
	for _, want := range []string{
		"args=a b",
		EnvStoreFile + "=" + filepath.Join(tempDir, "records.json"),
		EnvLang + "=ko",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("extension output does not contain %q:\n%s", want, out.String())
		}
	}

	if found, _ := RunExtension("does-not-exist", nil); found {
		t.Errorf("RunExtension(does-not-exist) = found")
	}
}
