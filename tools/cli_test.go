package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runApp(t *testing.T, args ...string) (stdout, stderr string, _ error) {
	t.Helper()

	var out, errOut bytes.Buffer
	app := newApp(&out, &errOut)
	err := app.Run(context.Background(), append([]string{"njexercises"}, args...))
	return out.String(), errOut.String(), err
}

func TestHeapSort(t *testing.T) {
	out, _, err := runApp(t, "heapsort", "4", "2", "9", "11")
	require.NoError(t, err)
	assert.Equal(t, "2 4 9 11\n", out)

	out, _, err = runApp(t, "heapsort", "--max", "4", "2", "9", "11")
	require.NoError(t, err)
	assert.Equal(t, "11 9 4 2\n", out)

	_, _, err = runApp(t, "heapsort", "4", "two")
	assert.ErrorContains(t, err, `invalid integer "two"`)

	_, _, err = runApp(t, "heapsort")
	assert.Error(t, err)
}

func TestHeapSort_Limit(t *testing.T) {
	out, _, err := runApp(t, "heapsort", "--limit", "2", "4", "2", "9", "11")
	require.NoError(t, err)
	assert.Equal(t, "2 4\n", out)

	out, _, err = runApp(t, "heapsort", "--max", "--limit", "10", "4", "2")
	require.NoError(t, err)
	assert.Equal(t, "4 2\n", out)
}

func TestHeapSort_Verbose(t *testing.T) {
	out, logs, err := runApp(t, "--verbose", "heapsort", "3", "1")
	require.NoError(t, err)
	assert.Equal(t, "1 3\n", out)
	assert.Contains(t, logs, "drained heap")
	assert.Contains(t, logs, "root=1")

	out, logs, err = runApp(t, "-v", "dfs", "--vertices", "3", "0-1")
	require.NoError(t, err)
	assert.Equal(t, "0 1\n", out)
	assert.Contains(t, logs, "traversed graph")

	_, logs, err = runApp(t, "heapsort", "3", "1")
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestMerge(t *testing.T) {
	out, _, err := runApp(t, "merge", "1,4,9", "2,3", "", "5")
	require.NoError(t, err)
	assert.Equal(t, "1 2 3 4 5 9\n", out)

	out, _, err = runApp(t, "merge", "--max", "9,4,1", "5,5")
	require.NoError(t, err)
	assert.Equal(t, "9 5 5 4 1\n", out)

	_, _, err = runApp(t, "merge", "1,4", "3,2")
	assert.ErrorContains(t, err, "not sorted")
}

func TestSearchTree(t *testing.T) {
	out, _, err := runApp(t, "bst", "--find", "5,3,7,2,4,1,6", "5", "3", "7", "2", "4")
	require.NoError(t, err)
	assert.Equal(t, "5: true\n3: true\n7: true\n2: true\n4: true\n1: false\n6: false\n", out)

	_, _, err = runApp(t, "bst", "1", "2")
	assert.Error(t, err)
}

func TestDepthFirst(t *testing.T) {
	out, _, err := runApp(t, "dfs", "--vertices", "4", "0-1", "0-2", "1-2", "2-3", "3-3")
	require.NoError(t, err)
	assert.Equal(t, "0 1 2 3\n", out)

	out, _, err = runApp(t, "dfs", "--vertices", "5", "--start", "3", "0-1", "0-2", "3-4")
	require.NoError(t, err)
	assert.Equal(t, "3 4\n", out)

	_, _, err = runApp(t, "dfs", "--vertices", "2", "0-5")
	assert.ErrorContains(t, err, "out of range")

	_, _, err = runApp(t, "dfs", "--vertices", "2", "--start", "2")
	assert.ErrorContains(t, err, "out of range")

	_, _, err = runApp(t, "dfs", "--vertices", "9223372036854775808")
	assert.ErrorContains(t, err, "usage: dfs")

	_, _, err = runApp(t, "dfs", "--vertices", "2147483648")
	assert.ErrorContains(t, err, "at most 2147483647")

	_, _, err = runApp(t, "dfs", "--vertices", "2", "01")
	assert.ErrorContains(t, err, "u-v")
}
