package storage

import (
	"encoding/json"
	"fmt"
)

// Collection names a partition of the store.
type Collection string

const (
	Content      Collection = "content"
	Skills       Collection = "skills"
	Experiences  Collection = "experiences"
	BlogPosts    Collection = "blogPosts"
	ProfileImage Collection = "profileImage"
	EditMode     Collection = "editMode"
)

// Fixed keys of the singleton records.
const (
	KeyMainContent   = "mainContent"
	KeyProfile       = "profile"
	KeyEditModeState = "editModeState"
)

type collectionInfo struct {
	table string
	auto  bool // records keyed by an assigned integer id
}

var collections = map[Collection]collectionInfo{
	Content:      {table: "content"},
	Skills:       {table: "skills", auto: true},
	Experiences:  {table: "experiences", auto: true},
	BlogPosts:    {table: "blog_posts", auto: true},
	ProfileImage: {table: "profile_image"},
	EditMode:     {table: "edit_mode"},
}

// Collections returns every known collection in a stable order.
func Collections() []Collection {
	return []Collection{Content, Skills, Experiences, BlogPosts, ProfileImage, EditMode}
}

// IsAuto reports whether c assigns integer identities on insert.
func (c Collection) IsAuto() bool {
	return collections[c].auto
}

type accessMode int

const (
	anyAccess accessMode = iota
	keyedAccess
	autoAccess
)

// lookup resolves c for an operation in the given access mode.
func lookup(c Collection, mode accessMode) (collectionInfo, error) {
	info, ok := collections[c]
	if !ok {
		return info, fmt.Errorf("%w: unknown collection %q", ErrInvalidCollection, c)
	}
	switch {
	case mode == keyedAccess && info.auto:
		return info, fmt.Errorf("%w: %q is not a keyed collection", ErrInvalidCollection, c)
	case mode == autoAccess && !info.auto:
		return info, fmt.Errorf("%w: %q is not a list collection", ErrInvalidCollection, c)
	}
	return info, nil
}

// Record is one stored value. ID is set for list collections, Key for
// keyed ones.
type Record struct {
	ID   int64
	Key  string
	Data json.RawMessage
}

// Decode unmarshals the stored JSON value into dst.
func (r Record) Decode(dst any) error {
	return json.Unmarshal(r.Data, dst)
}
