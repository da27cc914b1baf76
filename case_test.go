package compass_test

import (
	"encoding/json"
	"testing"

	"github.com/fwojciec/compass"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaseID_JSON(t *testing.T) {
	t.Parallel()

	t.Run("keeps numeric ids numeric", func(t *testing.T) {
		t.Parallel()

		var c compass.Case
		require.NoError(t, json.Unmarshal([]byte(`{"case_id": 42, "score": 0.5}`), &c))

		assert.Equal(t, compass.IntCaseID(42), c.ID)
		out, err := json.Marshal(c.ID)
		require.NoError(t, err)
		assert.Equal(t, "42", string(out))
	})

	t.Run("keeps string ids quoted", func(t *testing.T) {
		t.Parallel()

		var c compass.Case
		require.NoError(t, json.Unmarshal([]byte(`{"case_id": "abc-1"}`), &c))

		assert.Equal(t, compass.StringCaseID("abc-1"), c.ID)
		out, err := json.Marshal(c.ID)
		require.NoError(t, err)
		assert.Equal(t, `"abc-1"`, string(out))
	})

	t.Run("numeric and string ids with same text differ", func(t *testing.T) {
		t.Parallel()

		assert.NotEqual(t, compass.IntCaseID(7), compass.StringCaseID("7"))
		assert.Equal(t, "7", compass.IntCaseID(7).String())
		assert.Equal(t, "7", compass.StringCaseID("7").String())
	})

	t.Run("null leaves zero id", func(t *testing.T) {
		t.Parallel()

		var id compass.CaseID
		require.NoError(t, json.Unmarshal([]byte(`null`), &id))

		assert.True(t, id.IsZero())
	})

	t.Run("rejects objects", func(t *testing.T) {
		t.Parallel()

		var id compass.CaseID
		err := json.Unmarshal([]byte(`{"id": 1}`), &id)

		require.Error(t, err)
	})
}

func TestParseCaseID(t *testing.T) {
	t.Parallel()

	assert.Equal(t, compass.IntCaseID(12), compass.ParseCaseID("12"))
	assert.Equal(t, compass.StringCaseID("case-12"), compass.ParseCaseID("case-12"))
}

func TestSortCases(t *testing.T) {
	t.Parallel()

	t.Run("orders by score descending", func(t *testing.T) {
		t.Parallel()

		cases := []compass.Case{
			{ID: compass.IntCaseID(1), Score: 0.9},
			{ID: compass.IntCaseID(2), Score: 0.95},
			{ID: compass.IntCaseID(3), Score: 0.1},
		}

		compass.SortCases(cases)

		assert.Equal(t, []compass.CaseID{compass.IntCaseID(2), compass.IntCaseID(1), compass.IntCaseID(3)}, ids(cases))
	})

	t.Run("keeps server order for equal scores", func(t *testing.T) {
		t.Parallel()

		cases := []compass.Case{
			{ID: compass.IntCaseID(1), Score: 0.5},
			{ID: compass.IntCaseID(2), Score: 0.7},
			{ID: compass.IntCaseID(3), Score: 0.5},
			{ID: compass.IntCaseID(4), Score: 0.5},
		}

		compass.SortCases(cases)

		assert.Equal(t, []compass.CaseID{compass.IntCaseID(2), compass.IntCaseID(1), compass.IntCaseID(3), compass.IntCaseID(4)}, ids(cases))
	})
}

func ids(cases []compass.Case) []compass.CaseID {
	out := make([]compass.CaseID, 0, len(cases))
	for _, c := range cases {
		out = append(out, c.ID)
	}
	return out
}
