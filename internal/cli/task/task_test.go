package task

import (
	"strconv"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tagapp "github.com/thenoetrevino/tagdo/internal/app"
	"github.com/thenoetrevino/tagdo/internal/cli"
	"github.com/thenoetrevino/tagdo/internal/models"
	"github.com/thenoetrevino/tagdo/internal/testutil"
	clitest "github.com/thenoetrevino/tagdo/internal/testutil/cli"
)

func idArg(t models.Task) string {
	return strconv.FormatInt(t.ID, 10)
}

func TestAddCmd(t *testing.T) {
	t.Run("adds with default tag", func(t *testing.T) {
		app := clitest.SetupCLITest(t)

		output, err := clitest.ExecuteCLICommand(t, app, AddCmd(), []string{"Buy", "milk"})
		require.NoError(t, err)
		assert.Contains(t, output, "Added task")
		assert.Contains(t, output, "Buy milk")

		tasks := app.Store.Tasks()
		require.Len(t, tasks, 1)
		assert.Equal(t, "Buy milk", tasks[0].Text)
		assert.Equal(t, models.TagNone, tasks[0].Tag)
		assert.False(t, tasks[0].Completed)
	})

	t.Run("tag flag is case-insensitive", func(t *testing.T) {
		app := clitest.SetupCLITest(t)

		_, err := clitest.ExecuteCLICommand(t, app, AddCmd(), []string{"Call", "bank", "--tag", "urgent"})
		require.NoError(t, err)
		require.Equal(t, 1, app.Store.Len())
		assert.Equal(t, models.TagUrgent, app.Store.Tasks()[0].Tag)
	})

	t.Run("blank text is ignored", func(t *testing.T) {
		app := clitest.SetupCLITest(t)

		output, err := clitest.ExecuteCLICommand(t, app, AddCmd(), []string{"   "})
		require.NoError(t, err)
		assert.Empty(t, output)
		assert.Equal(t, 0, app.Store.Len())
	})

	t.Run("unknown tag is a validation error", func(t *testing.T) {
		app := clitest.SetupCLITest(t)

		_, stderr, err := clitest.ExecuteCLICommandWithStderr(t, app, AddCmd(), []string{"x", "--tag", "someday"})
		require.Error(t, err)
		assert.Equal(t, cli.ExitValidation, cli.CodeFor(err))
		assert.Contains(t, stderr, "invalid tag")
		assert.Equal(t, 0, app.Store.Len())
	})

	t.Run("quiet prints the id", func(t *testing.T) {
		app := clitest.SetupCLITest(t)

		output, err := clitest.ExecuteCLICommand(t, app, AddCmd(), []string{"Quiet", "--quiet"})
		require.NoError(t, err)
		assert.Equal(t, idArg(app.Store.Tasks()[0])+"\n", output)
	})

	t.Run("json output", func(t *testing.T) {
		app := clitest.SetupCLITest(t)

		output, err := clitest.ExecuteCLICommand(t, app, AddCmd(), []string{"Json", "--json"})
		require.NoError(t, err)

		result := testutil.ParseJSON(t, output)
		assert.Equal(t, true, result["success"])
		data := result["data"].(map[string]interface{})
		assert.Equal(t, "Json", data["text"])
		assert.Equal(t, models.TagNone, data["tag"])
		assert.Equal(t, false, data["completed"])
	})

	t.Run("missing text is a usage error", func(t *testing.T) {
		app := clitest.SetupCLITest(t)

		_, err := clitest.ExecuteCLICommand(t, app, AddCmd(), []string{})
		require.Error(t, err)
		assert.Equal(t, cli.ExitUsage, cli.CodeFor(err))
	})
}

func TestListCmd(t *testing.T) {
	app := clitest.SetupCLITest(t)
	milk := testutil.CreateTestTask(t, app, "Buy milk", models.TagNone)
	ship := testutil.CreateTestTask(t, app, "Ship release", models.TagUrgent)
	require.True(t, app.Store.ToggleComplete(t.Context(), milk.ID))

	t.Run("human output lists every task", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ListCmd(), []string{})
		require.NoError(t, err)
		assert.Contains(t, output, "Buy milk")
		assert.Contains(t, output, "Ship release")
		assert.Contains(t, output, "[URGENT]")
		assert.Contains(t, output, "2 tasks, 1 completed, 1 pending")
	})

	t.Run("quiet prints ids in order", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ListCmd(), []string{"--quiet"})
		require.NoError(t, err)
		assert.Equal(t, idArg(milk)+"\n"+idArg(ship)+"\n", output)
	})

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"pending", []string{"--pending"}, []string{"Ship release"}},
		{"completed", []string{"--completed"}, []string{"Buy milk"}},
		{"by tag", []string{"--tag", "URGENT"}, []string{"Ship release"}},
		{"tag with no match", []string{"--tag", "important"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := clitest.ExecuteCLICommand(t, app, ListCmd(), append(tt.args, "--json"))
			require.NoError(t, err)

			result := testutil.ParseJSON(t, output)
			raw := result["tasks"].([]interface{})
			got := make([]string, 0, len(raw))
			for _, r := range raw {
				got = append(got, r.(map[string]interface{})["text"].(string))
			}
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("pending and completed together is a usage error", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, ListCmd(), []string{"--pending", "--completed"})
		require.Error(t, err)
		assert.Equal(t, cli.ExitUsage, cli.CodeFor(err))
	})

	t.Run("render uses markdown", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ListCmd(), []string{"--render"})
		require.NoError(t, err)
		assert.Contains(t, output, "Ship")
	})
}

func TestListCmd_Empty(t *testing.T) {
	app := clitest.SetupCLITest(t)

	output, err := clitest.ExecuteCLICommand(t, app, ListCmd(), []string{})
	require.NoError(t, err)
	assert.Contains(t, output, "No tasks found")
}

func TestDoneCmd(t *testing.T) {
	app := clitest.SetupCLITest(t)
	task := testutil.CreateTestTask(t, app, "Buy milk", models.TagNone)

	output, err := clitest.ExecuteCLICommand(t, app, DoneCmd(), []string{idArg(task)})
	require.NoError(t, err)
	assert.Contains(t, output, "marked completed")
	got, _ := app.Store.Get(task.ID)
	assert.True(t, got.Completed)

	output, err = clitest.ExecuteCLICommand(t, app, DoneCmd(), []string{idArg(task)})
	require.NoError(t, err)
	assert.Contains(t, output, "marked pending")
	got, _ = app.Store.Get(task.ID)
	assert.False(t, got.Completed)
}

func TestIDCommands_Errors(t *testing.T) {
	commands := map[string]func() *cobra.Command{
		"done": DoneCmd,
		"tag":  TagCmd,
		"rm":   RmCmd,
	}

	for name, newCmd := range commands {
		t.Run(name+" unknown id", func(t *testing.T) {
			app := clitest.SetupCLITest(t)
			testutil.CreateTestTask(t, app, "keep", models.TagNone)
			before := app.Store.Tasks()

			_, stderr, err := clitest.ExecuteCLICommandWithStderr(t, app, newCmd(), []string{"42"})
			require.Error(t, err)
			assert.Equal(t, cli.ExitNotFound, cli.CodeFor(err))
			assert.ErrorIs(t, err, models.ErrTaskNotFound)
			assert.Contains(t, stderr, "task not found")
			assert.Equal(t, before, app.Store.Tasks())
		})

		t.Run(name+" non-numeric id", func(t *testing.T) {
			app := clitest.SetupCLITest(t)

			_, err := clitest.ExecuteCLICommand(t, app, newCmd(), []string{"abc"})
			require.Error(t, err)
			assert.Equal(t, cli.ExitUsage, cli.CodeFor(err))
		})

		t.Run(name+" json error envelope", func(t *testing.T) {
			app := clitest.SetupCLITest(t)

			output, err := clitest.ExecuteCLICommand(t, app, newCmd(), []string{"42", "--json"})
			require.Error(t, err)
			result := testutil.ParseJSON(t, output)
			assert.Equal(t, false, result["success"])
			assert.Equal(t, "TASK_NOT_FOUND", result["error"].(map[string]interface{})["code"])
		})
	}
}

func TestTagCmd(t *testing.T) {
	app := clitest.SetupCLITest(t)
	task := testutil.CreateTestTask(t, app, "Buy milk", models.TagNone)

	output, err := clitest.ExecuteCLICommand(t, app, TagCmd(), []string{idArg(task)})
	require.NoError(t, err)
	assert.Contains(t, output, "[URGENT & IMPORTANT]")

	got, _ := app.Store.Get(task.ID)
	assert.Equal(t, models.TagUrgentImportant, got.Tag)

	output, err = clitest.ExecuteCLICommand(t, app, TagCmd(), []string{idArg(task), "--quiet"})
	require.NoError(t, err)
	assert.Equal(t, idArg(task)+"\n", output)
	got, _ = app.Store.Get(task.ID)
	assert.Equal(t, models.TagImportant, got.Tag)
}

func TestRmCmd(t *testing.T) {
	app := clitest.SetupCLITest(t)
	a := testutil.CreateTestTask(t, app, "A", models.TagNone)
	b := testutil.CreateTestTask(t, app, "B", models.TagNone)
	c := testutil.CreateTestTask(t, app, "C", models.TagNone)

	output, err := clitest.ExecuteCLICommand(t, app, RmCmd(), []string{idArg(b), "--json"})
	require.NoError(t, err)
	result := testutil.ParseJSON(t, output)
	assert.Equal(t, "B", result["data"].(map[string]interface{})["text"])

	tasks := app.Store.Tasks()
	require.Len(t, tasks, 2)
	assert.Equal(t, a.ID, tasks[0].ID)
	assert.Equal(t, c.ID, tasks[1].ID)
}

func TestClearCmd(t *testing.T) {
	seed := func(t *testing.T) *tagapp.App {
		app := clitest.SetupCLITest(t)
		for i, text := range []string{"A", "B", "C"} {
			task := testutil.CreateTestTask(t, app, text, models.TagNone)
			if i != 1 {
				require.True(t, app.Store.ToggleComplete(t.Context(), task.ID))
			}
		}
		return app
	}

	stubConfirm := func(t *testing.T, answer bool) *int {
		calls := 0
		orig := confirmClear
		confirmClear = func(int) (bool, error) {
			calls++
			return answer, nil
		}
		t.Cleanup(func() { confirmClear = orig })
		return &calls
	}

	t.Run("yes skips the prompt", func(t *testing.T) {
		app := seed(t)
		calls := stubConfirm(t, false)

		output, err := clitest.ExecuteCLICommand(t, app, ClearCmd(), []string{"--yes"})
		require.NoError(t, err)
		assert.Contains(t, output, "Removed 2 completed task(s)")
		assert.Zero(t, *calls)
		require.Equal(t, 1, app.Store.Len())
		assert.Equal(t, "B", app.Store.Tasks()[0].Text)
	})

	t.Run("declined prompt keeps tasks", func(t *testing.T) {
		app := seed(t)
		calls := stubConfirm(t, false)

		output, err := clitest.ExecuteCLICommand(t, app, ClearCmd(), []string{})
		require.NoError(t, err)
		assert.Contains(t, output, "Cancelled")
		assert.Equal(t, 1, *calls)
		assert.Equal(t, 3, app.Store.Len())
	})

	t.Run("confirmed prompt clears", func(t *testing.T) {
		app := seed(t)
		stubConfirm(t, true)

		_, err := clitest.ExecuteCLICommand(t, app, ClearCmd(), []string{})
		require.NoError(t, err)
		assert.Equal(t, 1, app.Store.Len())
	})

	t.Run("json never prompts", func(t *testing.T) {
		app := seed(t)
		calls := stubConfirm(t, false)

		output, err := clitest.ExecuteCLICommand(t, app, ClearCmd(), []string{"--json"})
		require.NoError(t, err)
		result := testutil.ParseJSON(t, output)
		assert.Equal(t, float64(2), result["removed"])
		assert.Zero(t, *calls)
	})

	t.Run("nothing to clear", func(t *testing.T) {
		app := clitest.SetupCLITest(t)
		testutil.CreateTestTask(t, app, "A", models.TagNone)
		calls := stubConfirm(t, true)

		output, err := clitest.ExecuteCLICommand(t, app, ClearCmd(), []string{})
		require.NoError(t, err)
		assert.Contains(t, output, "No completed tasks to clear")
		assert.Zero(t, *calls)
	})
}

func TestMoveCmd(t *testing.T) {
	texts := func(app *tagapp.App) string {
		var parts []string
		for _, task := range app.Store.Tasks() {
			parts = append(parts, task.Text)
		}
		return strings.Join(parts, ",")
	}

	seed := func(t *testing.T) *tagapp.App {
		app := clitest.SetupCLITest(t)
		for _, text := range []string{"A", "B", "C"} {
			testutil.CreateTestTask(t, app, text, models.TagNone)
		}
		return app
	}

	tests := []struct {
		name     string
		args     []string
		wantCode int
		want     string
		wantOut  string
	}{
		{"forward", []string{"0", "2"}, cli.ExitSuccess, "B,C,A", "moved from 0 to 2"},
		{"backward", []string{"2", "0"}, cli.ExitSuccess, "C,A,B", "moved from 2 to 0"},
		{"same position", []string{"1", "1"}, cli.ExitSuccess, "A,B,C", "already at position 1 (no change)"},
		{"from out of range", []string{"3", "0"}, cli.ExitValidation, "A,B,C", ""},
		{"to out of range", []string{"0", "5"}, cli.ExitValidation, "A,B,C", ""},
		{"non-numeric", []string{"x", "1"}, cli.ExitUsage, "A,B,C", ""},
		{"missing argument", []string{"1"}, cli.ExitUsage, "A,B,C", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := seed(t)

			output, err := clitest.ExecuteCLICommand(t, app, MoveCmd(), tt.args)
			assert.Equal(t, tt.wantCode, cli.CodeFor(err))
			assert.Equal(t, tt.want, texts(app))
			if tt.wantOut != "" {
				assert.Contains(t, output, tt.wantOut)
			}
			if tt.name == "same position" {
				assert.NotContains(t, output, "moved")
			}
		})
	}
}

func TestTagsCmd(t *testing.T) {
	app := clitest.SetupCLITest(t)

	output, err := clitest.ExecuteCLICommand(t, app, TagsCmd(), []string{"--quiet"})
	require.NoError(t, err)
	assert.Equal(t, "NONE\nURGENT & IMPORTANT\nIMPORTANT\nURGENT\nLow Priority...\n", output)

	output, err = clitest.ExecuteCLICommand(t, app, TagsCmd(), []string{})
	require.NoError(t, err)
	assert.Contains(t, output, "(default)")
}
