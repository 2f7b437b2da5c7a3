package session

import (
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/pathfinder/internal/catalog"
	"github.com/abhisek/pathfinder/internal/scoring"
)

func TestResponseSet_Upsert(t *testing.T) {
	var s ResponseSet
	s.Upsert(scoring.Response{QuestionID: "p1", Value: 2})
	s.Upsert(scoring.Response{QuestionID: "p2", Value: 3})
	s.Upsert(scoring.Response{QuestionID: "p1", Value: 5})

	require.Equal(t, 2, s.Len())
	assert.Equal(t, []scoring.Response{
		{QuestionID: "p2", Value: 3},
		{QuestionID: "p1", Value: 5},
	}, s.List())

	r, ok := s.Get("p1")
	assert.True(t, ok)
	assert.Equal(t, 5, r.Value)

	_, ok = s.Get("w1")
	assert.False(t, ok)
}

func TestResponseSet_UpsertIdempotent(t *testing.T) {
	var once, twice ResponseSet
	r := scoring.Response{QuestionID: "t3", Value: 2, Section: catalog.SectionTechnical}
	once.Upsert(r)
	twice.Upsert(r)
	twice.Upsert(r)

	assert.Equal(t, once.List(), twice.List())
	assert.Equal(t,
		scoring.ComputeReport(catalog.Default(), once.List()),
		scoring.ComputeReport(catalog.Default(), twice.List()),
	)
}

func TestResponseSet_ListIsCopy(t *testing.T) {
	var s ResponseSet
	s.Upsert(scoring.Response{QuestionID: "p1", Value: 2})
	l := s.List()
	l[0].Value = 5

	r, _ := s.Get("p1")
	assert.Equal(t, 2, r.Value)
}

func TestResponseSet_Reset(t *testing.T) {
	var s ResponseSet
	s.Upsert(scoring.Response{QuestionID: "p1", Value: 2})
	s.Reset()
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.List())
}

func TestLoadResponses(t *testing.T) {
	t.Run("yaml list", func(t *testing.T) {
		core, logs := observer.New(zapcore.WarnLevel)
		set, err := LoadResponses(filepath.Join("testdata", "answers.yaml"), catalog.Default(), zap.New(core))
		require.NoError(t, err)

		assert.Equal(t, 5, set.Len())
		r, ok := set.Get("p1")
		require.True(t, ok)
		assert.Equal(t, 4, r.Value)
		assert.Equal(t, catalog.SectionPsychometric, r.Section)

		unknown, ok := set.Get("x9")
		require.True(t, ok)
		assert.Equal(t, catalog.Section(""), unknown.Section)
		assert.Equal(t, 1, logs.FilterMessage("response for unknown question").Len())
	})

	t.Run("json mapping", func(t *testing.T) {
		core, logs := observer.New(zapcore.WarnLevel)
		set, err := LoadResponses(filepath.Join("testdata", "answers.json"), catalog.Default(), zap.New(core))
		require.NoError(t, err)

		assert.Equal(t, 2, set.Len())
		assert.Equal(t, 1, logs.FilterMessage("response value out of range").Len())
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := LoadResponses(filepath.Join("testdata", "bad_field.yaml"), catalog.Default(), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bad_field.yaml")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadResponses(filepath.Join("testdata", "none.yaml"), catalog.Default(), nil)
		require.Error(t, err)
	})
}

func TestParseResponses_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"empty", "", "empty document"},
		{"scalar", "hello", "expected a list or a mapping"},
		{"missing question", "- {value: 3}", "missing question ID"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseResponses([]byte(tt.data), catalog.Default(), nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestEvaluate(t *testing.T) {
	set, err := LoadResponses(filepath.Join("testdata", "answers.yaml"), catalog.Default(), nil)
	require.NoError(t, err)

	now := time.Date(2024, 5, 2, 9, 30, 0, 0, time.UTC)
	sum := Evaluate(catalog.Default(), scoring.New(catalog.Default()), set, now)

	assert.NotEmpty(t, sum.SessionID)
	assert.Equal(t, 4, sum.Answered)
	assert.Equal(t, 22, sum.Total)
	assert.Equal(t, time.Duration(0), sum.Duration())
	assert.True(t, reflect.DeepEqual(sum.Report, scoring.ComputeReport(catalog.Default(), set.List())))
}

func TestEvaluate_CountsOnlyScoredResponses(t *testing.T) {
	var set ResponseSet
	set.Upsert(scoring.Response{QuestionID: "p1", Value: 4})
	set.Upsert(scoring.Response{QuestionID: "p2", Value: 9})
	set.Upsert(scoring.Response{QuestionID: "t1", Value: 5}) // t1 has four options
	set.Upsert(scoring.Response{QuestionID: "x99", Value: 3})

	sum := Evaluate(catalog.Default(), scoring.New(catalog.Default()), &set, time.Now())
	assert.Equal(t, 1, sum.Answered)
	assert.Equal(t, 22, sum.Total)
}
