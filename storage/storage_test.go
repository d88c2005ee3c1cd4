package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type skill struct {
	Icon string `json:"icon"`
	Name string `json:"name"`
}

func openTestDB(t *testing.T, dir string, version int64) *DB {
	t.Helper()
	db, err := Open(context.Background(), Options{Dir: dir, Version: version})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func decodeSkills(t *testing.T, recs []Record) []skill {
	t.Helper()
	out := make([]skill, 0, len(recs))
	for _, r := range recs {
		var s skill
		require.NoError(t, r.Decode(&s))
		out = append(out, s)
	}
	return out
}

func TestOpenCreatesDatabase(t *testing.T) {
	dir := t.TempDir()
	db := openTestDB(t, dir, 0)

	assert.Equal(t, SchemaVersion, db.Version())
	assert.Equal(t, filepath.Join(dir, DefaultName), db.Path())
	_, err := os.Stat(db.Path())
	assert.NoError(t, err)
}

func TestOpenUnsupportedEnvironment(t *testing.T) {
	// A regular file where the data directory should be.
	file := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	_, err := Open(context.Background(), Options{Dir: file})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedEnvironment)

	var se *Error
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "open", se.Op)
}

func TestOpenUnknownVersion(t *testing.T) {
	_, err := Open(context.Background(), Options{Dir: t.TempDir(), Version: 99})
	assert.ErrorIs(t, err, ErrOpenFailed)
}

func TestOpenRefusesDowngrade(t *testing.T) {
	dir := t.TempDir()
	db, err := Open(context.Background(), Options{Dir: dir, Version: 2})
	require.NoError(t, err)
	require.NoError(t, db.Close())

	_, err = Open(context.Background(), Options{Dir: dir, Version: 1})
	assert.ErrorIs(t, err, ErrOpenFailed)
}

func TestGetMissingIsNotAnError(t *testing.T) {
	db := openTestDB(t, t.TempDir(), 0)
	ctx := context.Background()

	for _, c := range []Collection{Content, ProfileImage, EditMode} {
		_, ok, err := db.Get(ctx, c, "nope")
		require.NoError(t, err, c)
		assert.False(t, ok, c)
	}
}

func TestPutGetIdempotent(t *testing.T) {
	db := openTestDB(t, t.TempDir(), 0)
	ctx := context.Background()
	value := map[string]string{"data": "data:image/png;base64,AAAA"}

	for i := 0; i < 3; i++ {
		require.NoError(t, db.Put(ctx, ProfileImage, KeyProfile, value))
		rec, ok, err := db.Get(ctx, ProfileImage, KeyProfile)
		require.NoError(t, err)
		require.True(t, ok)
		var got map[string]string
		require.NoError(t, rec.Decode(&got))
		assert.Equal(t, value, got)
		assert.Equal(t, KeyProfile, rec.Key)
	}

	all, err := db.GetAll(ctx, ProfileImage)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestPutOverwrites(t *testing.T) {
	db := openTestDB(t, t.TempDir(), 0)
	ctx := context.Background()

	require.NoError(t, db.Put(ctx, EditMode, KeyEditModeState, map[string]bool{"isEnabled": true}))
	require.NoError(t, db.Put(ctx, EditMode, KeyEditModeState, map[string]bool{"isEnabled": false}))

	rec, ok, err := db.Get(ctx, EditMode, KeyEditModeState)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"isEnabled":false}`, string(rec.Data))
}

func TestReplaceAllRoundTrip(t *testing.T) {
	db := openTestDB(t, t.TempDir(), 0)
	ctx := context.Background()

	want := []skill{{Icon: "fab fa-go", Name: "Go"}, {Icon: "fab fa-js", Name: "JS"}, {Icon: "fa-db", Name: "SQL"}}
	items := make([]any, len(want))
	for i := range want {
		items[i] = want[i]
	}
	ids, err := db.ReplaceAll(ctx, Skills, items)
	require.NoError(t, err)
	require.Len(t, ids, 3)
	assert.Less(t, ids[0], ids[1])
	assert.Less(t, ids[1], ids[2])

	recs, err := db.GetAll(ctx, Skills)
	require.NoError(t, err)
	assert.Equal(t, want, decodeSkills(t, recs))
	for i, r := range recs {
		assert.Equal(t, ids[i], r.ID)
	}
}

func TestReplaceAllDiscardsPreviousRecords(t *testing.T) {
	db := openTestDB(t, t.TempDir(), 0)
	ctx := context.Background()

	first, err := db.ReplaceAll(ctx, Experiences, []any{
		map[string]string{"title": "a"},
		map[string]string{"title": "b"},
	})
	require.NoError(t, err)

	second, err := db.ReplaceAll(ctx, Experiences, []any{map[string]string{"title": "c"}})
	require.NoError(t, err)
	require.Len(t, second, 1)
	// Identities are fresh and never reused.
	assert.Greater(t, second[0], first[1])

	recs, err := db.GetAll(ctx, Experiences)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.JSONEq(t, `{"title":"c"}`, string(recs[0].Data))
}

func TestReplaceAllEmptyClears(t *testing.T) {
	db := openTestDB(t, t.TempDir(), 0)
	ctx := context.Background()

	_, err := db.ReplaceAll(ctx, BlogPosts, []any{map[string]string{"title": "hello"}})
	require.NoError(t, err)

	ids, err := db.ReplaceAll(ctx, BlogPosts, nil)
	require.NoError(t, err)
	assert.Empty(t, ids)

	recs, err := db.GetAll(ctx, BlogPosts)
	require.NoError(t, err)
	assert.NotNil(t, recs)
	assert.Empty(t, recs)
}

func TestReplaceAllRollsBackOnFailure(t *testing.T) {
	db := openTestDB(t, t.TempDir(), 0)
	ctx := context.Background()

	before := []any{skill{Icon: "i1", Name: "one"}, skill{Icon: "i2", Name: "two"}}
	_, err := db.ReplaceAll(ctx, Skills, before)
	require.NoError(t, err)

	boom := errors.New("disk full")
	beforeInsert = func(c Collection, i int) error {
		if c == Skills && i == 1 {
			return boom
		}
		return nil
	}
	t.Cleanup(func() { beforeInsert = nil })

	_, err = db.ReplaceAll(ctx, Skills, []any{skill{Icon: "n1", Name: "new1"}, skill{Icon: "n2", Name: "new2"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWriteFailed)
	assert.ErrorIs(t, err, boom)

	recs, err := db.GetAll(ctx, Skills)
	require.NoError(t, err)
	assert.Equal(t, []skill{{Icon: "i1", Name: "one"}, {Icon: "i2", Name: "two"}}, decodeSkills(t, recs))
}

func TestReplaceAllEncodeFailure(t *testing.T) {
	db := openTestDB(t, t.TempDir(), 0)

	_, err := db.ReplaceAll(context.Background(), Skills, []any{make(chan int)})
	assert.ErrorIs(t, err, ErrWriteFailed)
}

func TestCollectionMisuse(t *testing.T) {
	db := openTestDB(t, t.TempDir(), 0)
	ctx := context.Background()

	tests := []struct {
		name string
		run  func() error
		kind error
	}{
		{"put on list", func() error { return db.Put(ctx, Skills, "k", 1) }, ErrWriteFailed},
		{"get on list", func() error { _, _, err := db.Get(ctx, BlogPosts, "k"); return err }, ErrReadFailed},
		{"replace on keyed", func() error { _, err := db.ReplaceAll(ctx, Content, nil); return err }, ErrWriteFailed},
		{"unknown", func() error { _, err := db.GetAll(ctx, Collection("bogus")); return err }, ErrReadFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			assert.ErrorIs(t, err, tt.kind)
			assert.ErrorIs(t, err, ErrInvalidCollection)
		})
	}
}

func TestEditModeAvailableAtVersionOne(t *testing.T) {
	db := openTestDB(t, t.TempDir(), 1)
	ctx := context.Background()

	_, ok, err := db.Get(ctx, EditMode, KeyEditModeState)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, db.Put(ctx, EditMode, KeyEditModeState, map[string]bool{"isEnabled": true}))
	rec, ok, err := db.Get(ctx, EditMode, KeyEditModeState)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"isEnabled":true}`, string(rec.Data))
}

func TestUpgradeKeepsExistingCollections(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	v1, err := Open(ctx, Options{Dir: dir, Version: 1})
	require.NoError(t, err)
	_, err = v1.ReplaceAll(ctx, Skills, []any{skill{Icon: "fa-x", Name: "X"}, skill{Icon: "fa-y", Name: "Y"}})
	require.NoError(t, err)
	require.NoError(t, v1.Put(ctx, Content, KeyMainContent, map[string]any{"en": map[string]string{"siteTitle": "Mine"}}))
	require.NoError(t, v1.Put(ctx, EditMode, KeyEditModeState, map[string]bool{"isEnabled": true}))
	require.NoError(t, v1.Close())

	v2 := openTestDB(t, dir, 2)
	assert.Equal(t, int64(2), v2.Version())

	recs, err := v2.GetAll(ctx, Skills)
	require.NoError(t, err)
	assert.Equal(t, []skill{{Icon: "fa-x", Name: "X"}, {Icon: "fa-y", Name: "Y"}}, decodeSkills(t, recs))

	rec, ok, err := v2.Get(ctx, Content, KeyMainContent)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"en":{"siteTitle":"Mine"}}`, string(rec.Data))

	rec, ok, err = v2.Get(ctx, EditMode, KeyEditModeState)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"isEnabled":true}`, string(rec.Data))
}

func TestUpgradeAddsNoTables(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	tables := func(db *DB) []string {
		t.Helper()
		rows, err := db.db.QueryContext(ctx, `SELECT name FROM sqlite_master
			WHERE type = 'table' AND name NOT LIKE 'sqlite_%' AND name NOT LIKE 'goose_%' ORDER BY name`)
		require.NoError(t, err)
		defer rows.Close()
		var names []string
		for rows.Next() {
			var n string
			require.NoError(t, rows.Scan(&n))
			names = append(names, n)
		}
		require.NoError(t, rows.Err())
		return names
	}

	v1, err := Open(ctx, Options{Dir: dir, Version: 1})
	require.NoError(t, err)
	before := tables(v1)
	require.NoError(t, v1.Close())

	v2 := openTestDB(t, dir, 2)
	assert.Equal(t, before, tables(v2))
	assert.Len(t, before, len(Collections()))
}

func TestReopenSameVersionKeepsData(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	first, err := Open(ctx, Options{Dir: dir})
	require.NoError(t, err)
	require.NoError(t, first.Put(ctx, ProfileImage, KeyProfile, map[string]string{"data": "x"}))
	require.NoError(t, first.Close())

	second := openTestDB(t, dir, 0)
	_, ok, err := second.Get(ctx, ProfileImage, KeyProfile)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestErrorMessage(t *testing.T) {
	err := opError(ErrWriteFailed, "put", Content, errors.New("locked"))
	assert.Equal(t, "storage: put content: write failed: locked", err.Error())

	bare := opError(ErrOpenFailed, "open", "", nil)
	assert.Equal(t, "storage: open: open database failed", bare.Error())
	assert.ErrorIs(t, bare, ErrOpenFailed)
}
