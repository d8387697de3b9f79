package main

import (
	"bytes"
	"testing"

	"github.com/osuushi/earclip"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReport(t *testing.T) {
	polygon := earclip.Polygon{Points: lShape}
	diagonals := []earclip.Diagonal{{From: 0, To: 2}, {From: 0, To: 3}, {From: 5, To: 3}}
	r := newReport(polygon, diagonals, nil)

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeReport(&buf, "text", r))
		assert.Equal(t, "( 0,2 )\n( 0,3 )\n( 5,3 )\n", buf.String())
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeReport(&buf, "json", r))
		assert.JSONEq(t, `{
			"vertices": 6,
			"diagonals": [{"from": 0, "to": 2}, {"from": 0, "to": 3}, {"from": 5, "to": 3}]
		}`, buf.String())
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeReport(&buf, "yaml", r))
		assert.YAMLEq(t, `
vertices: 6
diagonals:
  - {from: 0, to: 2}
  - {from: 0, to: 3}
  - {from: 5, to: 3}
`, buf.String())
	})

	t.Run("pretty", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeReport(&buf, "pretty", r))
		assert.Contains(t, buf.String(), "Vertices:")
		assert.Contains(t, buf.String(), "Diagonals:")
	})

	t.Run("unknown", func(t *testing.T) {
		assert.Error(t, writeReport(&bytes.Buffer{}, "xml", r))
	})
}

func TestWriteReport_Empty(t *testing.T) {
	triangle := earclip.Polygon{Points: lShape[:3]}

	t.Run("triangle", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeReport(&buf, "text", newReport(triangle, nil, nil)))
		assert.Equal(t, "No diagonal could be added\n", buf.String())
	})

	t.Run("json list is never null", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeReport(&buf, "json", newReport(triangle, nil, nil)))
		assert.JSONEq(t, `{"vertices": 3, "diagonals": []}`, buf.String())
	})

	t.Run("failure", func(t *testing.T) {
		err := errors.Wrap(earclip.ErrInvariantViolated, "triangulate: 4 vertices remain")
		r := newReport(earclip.Polygon{Points: lShape[:4]}, nil, err)

		var buf bytes.Buffer
		require.NoError(t, writeReport(&buf, "text", r))
		assert.Empty(t, buf.String())

		buf.Reset()
		require.NoError(t, writeReport(&buf, "json", r))
		assert.JSONEq(t, `{
			"vertices": 4,
			"diagonals": [],
			"error": "triangulate: 4 vertices remain: no ear found"
		}`, buf.String())
	})
}
