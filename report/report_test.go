package report_test

import (
	"bytes"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aasierra/acg/checksum"
	"github.com/aasierra/acg/report"
)

const helloSHA256 = "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"

func failed() checksum.Outcome {
	return checksum.Failure(&checksum.Error{
		Kind:      checksum.SourceUnavailable,
		Path:      "/gone",
		Algorithm: checksum.SHA256,
		Detail:    "no such file",
	})
}

func TestRender_substitutes_fields(t *testing.T) {
	t.Parallel()

	got := report.Render(
		"{algorithm} ({path}) = {digest} {other}",
		report.Record{
			Path:      "a.txt",
			Algorithm: "sha256",
			Digest:    "ff00",
		},
	)

	assert.Equal(t, "sha256 (a.txt) = ff00 {other}", got)
}

func TestWriter_text_success_goes_to_out(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer

	w := &report.Writer{
		Out:    &out,
		Err:    &errOut,
		Format: "{digest}  {path}",
	}

	require.NoError(t, w.Write(
		"hello.txt", checksum.SHA256, checksum.Success(helloSHA256),
	))

	assert.Equal(t, helloSHA256+"  hello.txt\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestWriter_empty_format_uses_default(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer

	w := &report.Writer{Out: &out, Err: &errOut}

	require.NoError(t, w.Write(
		"hello.txt", checksum.SHA256, checksum.Success(helloSHA256),
	))

	assert.Equal(t, helloSHA256+"  hello.txt\n", out.String())
}

func TestWriter_text_failure_goes_to_err(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer

	w := &report.Writer{
		Out:    &out,
		Err:    &errOut,
		Format: "{digest}  {path}",
	}

	require.NoError(t, w.Write("/gone", checksum.SHA256, failed()))

	assert.Empty(t, out.String())
	assert.True(t, strings.HasPrefix(errOut.String(), "/gone: FAILED: "))
	assert.Contains(t, errOut.String(), "no such file")
}

func TestWriter_json_lines(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	w := &report.Writer{Out: &out, JSON: true}

	require.NoError(t, w.Write(
		"hello.txt", checksum.SHA256, checksum.Success(helloSHA256),
	))
	require.NoError(t, w.Write("/gone", checksum.SHA256, failed()))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)

	var ok, bad report.Record

	require.NoError(t, json.Unmarshal([]byte(lines[0]), &ok))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &bad))

	assert.Equal(t, report.Record{
		Path:      "hello.txt",
		Algorithm: "sha256",
		Succeeded: true,
		Digest:    helloSHA256,
	}, ok)

	assert.False(t, bad.Succeeded)
	assert.Empty(t, bad.Digest)
	assert.Equal(t, "source unavailable", bad.Kind)
	assert.Contains(t, bad.Error, "/gone")
	assert.NotContains(t, lines[0], `"error"`)
}
