package launcher

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	name string
	args []string
}

func recorder(calls *[]call, err error) Runner {
	return func(_ context.Context, name string, args ...string) error {
		*calls = append(*calls, call{name: name, args: args})
		return err
	}
}

func TestLaunch_PassesFlagAndPath(t *testing.T) {
	var calls []call
	l := New("code")
	l.Run = recorder(&calls, nil)

	require.NoError(t, l.Launch(context.Background(), "/home/u/My Project"))

	require.Len(t, calls, 1)
	assert.Equal(t, "code", calls[0].name)
	assert.Equal(t, []string{"--new-window", "/home/u/My Project"}, calls[0].args)
}

func TestLaunch_DoesNotMutateCommand(t *testing.T) {
	var calls []call
	l := New("code")
	l.Run = recorder(&calls, nil)

	require.NoError(t, l.Launch(context.Background(), "/a"))
	require.NoError(t, l.Launch(context.Background(), "/b"))

	assert.Equal(t, []string{"code", "--new-window"}, l.Command)
	assert.Equal(t, []string{"--new-window", "/b"}, calls[1].args)
}

func TestLaunch_MissingBinary(t *testing.T) {
	var calls []call
	l := New("code")
	l.Run = recorder(&calls, &exec.Error{Name: "code", Err: exec.ErrNotFound})

	err := l.Launch(context.Background(), "/a")

	assert.ErrorIs(t, err, ErrEditorNotFound)
	assert.Contains(t, err.Error(), `"code"`)
}

func TestLaunch_ProcessFailure(t *testing.T) {
	var calls []call
	l := New("code")
	l.Run = recorder(&calls, fmt.Errorf("exit status 1"))

	err := l.Launch(context.Background(), "/a")

	assert.ErrorIs(t, err, ErrLaunch)
	assert.False(t, errors.Is(err, ErrEditorNotFound))
}

func TestLaunch_RealMissingBinary(t *testing.T) {
	l := New("codelaunch-test-editor-that-does-not-exist")

	err := l.Launch(context.Background(), "/a")

	assert.ErrorIs(t, err, ErrEditorNotFound)
}

func TestLaunch_EmptyCommand(t *testing.T) {
	l := &Launcher{}
	assert.ErrorIs(t, l.Launch(context.Background(), "/a"), ErrLaunch)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    []string
		wantErr bool
	}{
		{"simple", "code --new-window", []string{"code", "--new-window"}, false},
		{"quoted path", `"/Applications/Visual Studio Code.app/Contents/Resources/app/bin/code" -n`,
			[]string{"/Applications/Visual Studio Code.app/Contents/Resources/app/bin/code", "-n"}, false},
		{"flatpak", "flatpak run com.visualstudio.code --new-window",
			[]string{"flatpak", "run", "com.visualstudio.code", "--new-window"}, false},
		{"unterminated quote", `code "--new-window`, nil, true},
		{"empty", "   ", nil, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l, err := Parse(tc.line)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, l.Command)
		})
	}
}

func TestString(t *testing.T) {
	l := &Launcher{Command: []string{"/opt/VS Code/bin/code", "--new-window"}}
	assert.Equal(t, `'/opt/VS Code/bin/code' --new-window`, l.String())
}
