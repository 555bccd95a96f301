package tracker

import (
	"context"
	"testing"

	"github.com/Cyclone1070/cfgtrack/internal/tool/executor"
	"github.com/stretchr/testify/assert"
)

func TestProbeBuild_CollectsSourceUnits(t *testing.T) {
	exec := &fakeExecutor{result: &executor.Result{
		Stdout: "gcc -c -o net/net.o net/net.c\n" +
			"gcc -c -o drivers/serial/amba-pl011.o drivers/serial/amba-pl011.c\n" +
			"echo done\n" +
			"gcc -c -o net/net.o net/net.c\n",
		ExitCode: 0,
	}}
	tr := newTestTracker("/src", nil, nil, nil, exec)

	units := tr.ProbeBuild(context.Background())

	assert.Equal(t, []string{"make", "-n"}, exec.gotCommand)
	assert.Equal(t, "/src", exec.gotDir)

	assert.Len(t, units, 2)
	assert.Contains(t, units, "net/net.c")
	assert.Contains(t, units, "drivers/serial/amba-pl011.c")
	// option sets start empty; association is left to manual review
	assert.Empty(t, units["net/net.c"])
}

func TestProbeBuild_FailureDegradesToEmpty(t *testing.T) {
	exec := &fakeExecutor{
		result: &executor.Result{ExitCode: 2, Stderr: "no rule to make target"},
		err:    assert.AnError,
	}
	tr := newTestTracker("/src", nil, nil, nil, exec)

	units := tr.ProbeBuild(context.Background())

	assert.Empty(t, units)
}

func TestProbeBuild_TimeoutDegradesToEmpty(t *testing.T) {
	exec := &fakeExecutor{
		result: &executor.Result{ExitCode: -1},
		err:    executor.ErrTimeout,
	}
	tr := newTestTracker("/src", nil, nil, nil, exec)

	units := tr.ProbeBuild(context.Background())

	assert.Empty(t, units)
}
