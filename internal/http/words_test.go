package http

import (
	"net/http"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/english-hub/internal/entities"
)

func wordPath(id uint) string {
	return "/api/words/" + strconv.FormatUint(uint64(id), 10)
}

func TestWords_FollowUpLifecycle(t *testing.T) {
	env := setupRouter(t, nil)

	payload := map[string]any{
		"word":       "follow up",
		"meaning_cn": "跟进",
		"example_en": "I will follow up with you tomorrow.",
		"notes":      "常用于邮件/会议",
	}

	w := env.do(t, http.MethodPost, "/api/words", payload)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	created := decode[entities.Word](t, w)
	assert.Equal(t, "follow up", created.Word)
	assert.Greater(t, created.ID, uint(0))
	require.NotNil(t, created.Notes)
	assert.Equal(t, "常用于邮件/会议", *created.Notes)
	assert.False(t, created.CreatedAt.IsZero())

	w = env.do(t, http.MethodGet, "/api/words", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[[]entities.Word](t, w)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)

	w = env.do(t, http.MethodPost, "/api/words", payload)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Word already exists")

	update := map[string]any{
		"word":       "follow up",
		"meaning_cn": "后续跟进",
		"example_en": "I'll follow up on this action item.",
		"notes":      nil,
	}
	w = env.do(t, http.MethodPut, wordPath(created.ID), update)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"notes":null`)
	updated := decode[entities.Word](t, w)
	assert.Equal(t, "后续跟进", updated.MeaningCN)
	assert.Nil(t, updated.Notes)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))

	w = env.do(t, http.MethodDelete, wordPath(created.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"deleted": true}`, w.Body.String())

	w = env.do(t, http.MethodPut, wordPath(created.ID), update)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(t, http.MethodDelete, wordPath(created.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(t, http.MethodPut, "/api/words/999999", update)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestWords_DuplicateLeavesStoreUnchanged(t *testing.T) {
	env := setupRouter(t, nil)
	payload := map[string]any{"word": "bandwidth", "meaning_cn": "精力"}

	require.Equal(t, http.StatusOK, env.do(t, http.MethodPost, "/api/words", payload).Code)

	for range 3 {
		w := env.do(t, http.MethodPost, "/api/words", map[string]any{"word": "bandwidth", "meaning_cn": "带宽"})
		assert.Equal(t, http.StatusConflict, w.Code)
	}

	list := decode[[]entities.Word](t, env.do(t, http.MethodGet, "/api/words", nil))
	require.Len(t, list, 1)
	assert.Equal(t, "精力", list[0].MeaningCN)
}

func TestWords_CreateValidation(t *testing.T) {
	env := setupRouter(t, nil)

	tests := []struct {
		name string
		body any
	}{
		{"missing word", map[string]any{"meaning_cn": "跟进"}},
		{"missing meaning", map[string]any{"word": "follow up"}},
		{"null word", map[string]any{"word": nil, "meaning_cn": "跟进"}},
		{"wrong type", map[string]any{"word": 42, "meaning_cn": "跟进"}},
		{"malformed json", `{"word": "follow up",`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(t, http.MethodPost, "/api/words", tt.body)
			assert.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
		})
	}

	list := decode[[]entities.Word](t, env.do(t, http.MethodGet, "/api/words", nil))
	assert.Empty(t, list)
}

func TestWords_UpdateOmittedOptionalFieldsAreCleared(t *testing.T) {
	env := setupRouter(t, nil)

	created := decode[entities.Word](t, env.do(t, http.MethodPost, "/api/words", map[string]any{
		"word": "touch base", "meaning_cn": "简单沟通", "example_en": "Let's touch base on Monday.", "notes": "口语",
	}))

	w := env.do(t, http.MethodPut, wordPath(created.ID), map[string]any{"word": "touch base", "meaning_cn": "简单沟通"})
	require.Equal(t, http.StatusOK, w.Code)

	list := decode[[]entities.Word](t, env.do(t, http.MethodGet, "/api/words", nil))
	require.Len(t, list, 1)
	assert.Nil(t, list[0].ExampleEN)
	assert.Nil(t, list[0].Notes)
}

func TestWords_UpdateEmptyNotesReadsAsAbsent(t *testing.T) {
	env := setupRouter(t, nil)

	created := decode[entities.Word](t, env.do(t, http.MethodPost, "/api/words", map[string]any{
		"word": "heads-up", "meaning_cn": "提醒", "notes": "口语",
	}))

	updated := decode[entities.Word](t, env.do(t, http.MethodPut, wordPath(created.ID), map[string]any{
		"word": "heads-up", "meaning_cn": "提前告知", "notes": "",
	}))

	assert.Nil(t, updated.Notes)
}

func TestWords_UpdateToAnotherWordsTextConflicts(t *testing.T) {
	env := setupRouter(t, nil)

	env.do(t, http.MethodPost, "/api/words", map[string]any{"word": "align", "meaning_cn": "对齐"})
	other := decode[entities.Word](t, env.do(t, http.MethodPost, "/api/words", map[string]any{"word": "sync", "meaning_cn": "同步"}))

	w := env.do(t, http.MethodPut, wordPath(other.ID), map[string]any{"word": "align", "meaning_cn": "同步"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = env.do(t, http.MethodPut, wordPath(other.ID), map[string]any{"word": "sync", "meaning_cn": "同步一下"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWords_EmptyAndLongTextAccepted(t *testing.T) {
	env := setupRouter(t, nil)

	w := env.do(t, http.MethodPost, "/api/words", map[string]any{"word": "standup", "meaning_cn": ""})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "", decode[entities.Word](t, w).MeaningCN)

	w = env.do(t, http.MethodPost, "/api/words", map[string]any{"word": strings.Repeat("a", 129), "meaning_cn": "长"})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = env.do(t, http.MethodPost, "/api/words", map[string]any{"word": "", "meaning_cn": "空"})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestWords_InvalidID(t *testing.T) {
	env := setupRouter(t, nil)

	w := env.do(t, http.MethodDelete, "/api/words/abc", nil)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestWords_UnknownIntegerIDsNotFound(t *testing.T) {
	env := setupRouter(t, nil)
	body := map[string]any{"word": "sync", "meaning_cn": "同步"}

	for _, id := range []string{"0", "-1", "4294967296", "99999999999"} {
		t.Run(id, func(t *testing.T) {
			assert.Equal(t, http.StatusNotFound, env.do(t, http.MethodPut, "/api/words/"+id, body).Code)
			assert.Equal(t, http.StatusNotFound, env.do(t, http.MethodDelete, "/api/words/"+id, nil).Code)
		})
	}
}

func TestWords_ListMostRecentlyUpdatedFirst(t *testing.T) {
	env := setupRouter(t, nil)

	first := decode[entities.Word](t, env.do(t, http.MethodPost, "/api/words", map[string]any{"word": "first", "meaning_cn": "一"}))
	env.do(t, http.MethodPost, "/api/words", map[string]any{"word": "second", "meaning_cn": "二"})
	time.Sleep(5 * time.Millisecond)
	env.do(t, http.MethodPut, wordPath(first.ID), map[string]any{"word": "first", "meaning_cn": "一（改）"})

	list := decode[[]entities.Word](t, env.do(t, http.MethodGet, "/api/words", nil))

	require.Len(t, list, 2)
	assert.Equal(t, "first", list[0].Word)
	assert.Equal(t, "second", list[1].Word)
}
