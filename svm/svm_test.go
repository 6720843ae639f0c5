package svm_test

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/hscells/arff2libsvm/config"
	"github.com/hscells/arff2libsvm/svm"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRunner struct {
	commands []svm.Command
}

func (r *recordingRunner) Run(ctx context.Context, c svm.Command) (svm.Result, error) {
	r.commands = append(r.commands, c)
	return svm.Result{}, nil
}

func shell(t *testing.T) string {
	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not available")
	}
	return sh
}

func TestToolkitCommands(t *testing.T) {
	r := &recordingRunner{}
	c := config.Default("/home/u")
	tk := svm.NewToolkit(r, c)
	ctx := context.Background()

	_, err := tk.Scale(ctx, "d/data.train.unscaled", "d/data.train.scaled")
	require.NoError(t, err)
	_, err = tk.Train(ctx, "d/data.train.scaled", "d/data.model")
	require.NoError(t, err)
	_, err = tk.Predict(ctx, "d/data.test.scaled", "d/data.model", "d/data.prediction")
	require.NoError(t, err)

	assert.Equal(t, []svm.Command{
		{Path: "/home/u/git/libsvm/svm-scale", Args: []string{"-l", "0", "d/data.train.unscaled"}, Stdout: "d/data.train.scaled"},
		{Path: "/home/u/git/libsvm/svm-train", Args: []string{"-m", "2048", "-q", "d/data.train.scaled", "d/data.model"}},
		{Path: "/home/u/git/libsvm/svm-predict", Args: []string{"d/data.test.scaled", "d/data.model", "d/data.prediction"}},
	}, r.commands)
}

func TestCommandString(t *testing.T) {
	assert.Equal(t, "svm-scale -l 0 in > out", svm.Command{Path: "svm-scale", Args: []string{"-l", "0", "in"}, Stdout: "out"}.String())
	assert.Equal(t, "svm-train a b", svm.Command{Path: "svm-train", Args: []string{"a", "b"}}.String())
}

func TestExecRunnerCapture(t *testing.T) {
	sh := shell(t)
	res, err := svm.NewExecRunner().Run(context.Background(), svm.Command{
		Path: sh,
		Args: []string{"-c", "echo one; echo two; echo oops >&2"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, res.Output)
	assert.True(t, res.Elapsed > 0)
}

func TestExecRunnerRedirect(t *testing.T) {
	sh := shell(t)
	out := filepath.Join(t.TempDir(), "data.scaled")
	res, err := svm.NewExecRunner().Run(context.Background(), svm.Command{
		Path:   sh,
		Args:   []string{"-c", "echo 1 1:0.5"},
		Stdout: out,
	})
	require.NoError(t, err)
	assert.Empty(t, res.Output)

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "1 1:0.5\n", string(b))

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
}

func TestExecRunnerExitStatus(t *testing.T) {
	sh := shell(t)
	_, err := svm.NewExecRunner().Run(context.Background(), svm.Command{
		Path: sh,
		Args: []string{"-c", "echo failing; exit 3"},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, svm.ErrExitStatus))
	assert.Contains(t, err.Error(), "status 3")
}

func TestExecRunnerMissingBinary(t *testing.T) {
	_, err := svm.NewExecRunner().Run(context.Background(), svm.Command{
		Path: filepath.Join(t.TempDir(), "svm-train"),
	})
	require.Error(t, err)
	assert.False(t, errors.Is(err, svm.ErrExitStatus))
}

func TestExecRunnerLongLine(t *testing.T) {
	sh := shell(t)
	res, err := svm.NewExecRunner().Run(context.Background(), svm.Command{
		Path: sh,
		Args: []string{"-c", "head -c 300000 /dev/zero | tr '\\000' a; echo; echo done"},
	})
	require.NoError(t, err)
	require.Len(t, res.Output, 2)
	assert.Len(t, res.Output[0], 300000)
	assert.Equal(t, "done", res.Output[1])
}

func TestExecRunnerKeepsOutputOnFailure(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "data.scaled")
	require.NoError(t, os.WriteFile(out, []byte("1 1:0.5\n"), 0644))

	_, err := svm.NewExecRunner().Run(context.Background(), svm.Command{
		Path:   filepath.Join(dir, "svm-scale"),
		Args:   []string{"-l", "0", "data.unscaled"},
		Stdout: out,
	})
	require.Error(t, err)

	if sh, lookErr := exec.LookPath("sh"); lookErr == nil {
		_, err = svm.NewExecRunner().Run(context.Background(), svm.Command{
			Path:   sh,
			Args:   []string{"-c", "echo partial; exit 1"},
			Stdout: out,
		})
		assert.True(t, errors.Is(err, svm.ErrExitStatus))
	}

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "1 1:0.5\n", string(b))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
