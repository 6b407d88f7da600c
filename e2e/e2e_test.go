//go:build e2e

package e2e_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

var kilnBinary string

// fakeCMake records every invocation and simulates configure/build outcomes.
// KILN_FAKE_FAIL selects a failing step; KILN_FAKE_ARTIFACT makes the build
// produce an executable that leaves ran.txt in its working directory.
const fakeCMake = `#!/bin/sh
echo "cmake $*" >> "$KILN_FAKE_LOG"
if [ "$1" = "--build" ]; then
  if [ "$KILN_FAKE_FAIL" = "build" ]; then
    echo "fake build error" >&2
    exit 2
  fi
  if [ -n "$KILN_FAKE_ARTIFACT" ]; then
    mkdir -p "$4"
    printf '#!/bin/sh\necho engine started\ntouch ran.txt\n' > "$4/engine"
    chmod 755 "$4/engine"
  fi
  exit 0
fi
if [ "$KILN_FAKE_FAIL" = "configure" ]; then
  echo "fake configure error" >&2
  exit 1
fi
exit 0
`

func TestMain(m *testing.M) {
	tmpDir, err := os.MkdirTemp("", "kiln-e2e-*")
	if err != nil {
		panic(err)
	}

	kilnBinary = filepath.Join(tmpDir, "kiln")

	//nolint:gosec // Building binary with static arguments, not user input
	cmd := exec.Command("go", "build", "-o", kilnBinary, "./cmd/kiln")
	cmd.Dir = ".."
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		panic("failed to build kiln binary: " + err.Error())
	}

	exitCode := m.Run()

	_ = os.RemoveAll(tmpDir)

	os.Exit(exitCode)
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir:   "testdata",
		Setup: setupE2E,
	})
}

func setupE2E(env *testscript.Env) error {
	env.Setenv("NO_COLOR", "1")

	fakeBin := filepath.Join(env.WorkDir, ".fakebin")
	if err := os.MkdirAll(fakeBin, 0o750); err != nil {
		return err
	}
	//nolint:gosec // the fake tool must be executable
	if err := os.WriteFile(filepath.Join(fakeBin, "cmake"), []byte(fakeCMake), 0o755); err != nil {
		return err
	}
	env.Setenv("KILN_FAKE_LOG", filepath.Join(env.WorkDir, "cmake.log"))

	binDir := filepath.Dir(kilnBinary)
	currentPath := env.Getenv("PATH")
	env.Setenv("PATH", fakeBin+string(os.PathListSeparator)+binDir+string(os.PathListSeparator)+currentPath)

	homeDir := filepath.Join(env.WorkDir, ".home")
	if err := os.MkdirAll(homeDir, 0o750); err != nil {
		return err
	}
	env.Setenv("HOME", homeDir)

	return nil
}
