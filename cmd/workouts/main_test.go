package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunSamples(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run(nil, &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	require.Equal(t, strings.Join([]string{
		"Тип тренировки: Swimming; Длительность: 1.000 ч.; Дистанция: 0.994 км; Ср. скорость: 1.000 км/ч; Потрачено ккал: 336.000.",
		"Тип тренировки: Running; Длительность: 1.000 ч.; Дистанция: 9.750 км; Ср. скорость: 9.750 км/ч; Потрачено ккал: 699.750.",
		"Тип тренировки: SportsWalking; Длительность: 1.000 ч.; Дистанция: 5.850 км; Ср. скорость: 5.850 км/ч; Потрачено ккал: 157.500.",
	}, "\n")+"\n", stdout.String())
}

func TestRunOmitsFailedPackages(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.toml")
	doc := `
[[package]]
code = "RUN"
args = [15000, 1, 75]

[[package]]
code = "XYZ"
args = [1, 2, 3]

[[package]]
code = "SWM"
args = [720, 1, 80, 25, 40]
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	var stdout, stderr bytes.Buffer
	code := run([]string{"-input", path, "-concurrency", "2"}, &stdout, &stderr)

	require.Equal(t, 1, code)
	lines := strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	require.True(t, strings.HasPrefix(lines[0], "Тип тренировки: Running;"))
	require.True(t, strings.HasPrefix(lines[1], "Тип тренировки: Swimming;"))
	require.Contains(t, stderr.String(), "unknown workout type")
	require.Contains(t, stderr.String(), "1 of 3 packages failed")
}

func TestRunMissingInput(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-input", filepath.Join(t.TempDir(), "missing.toml")}, &stdout, &stderr)

	require.Equal(t, 1, code)
	require.Empty(t, stdout.String())
	require.Contains(t, stderr.String(), "failed to load packages")
}

func TestRunBadFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.Equal(t, 2, run([]string{"-nope"}, &stdout, &stderr))
	require.Empty(t, stdout.String())
}
