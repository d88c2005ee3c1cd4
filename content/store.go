// Package content is the application's view of the portfolio data. Store
// keeps the authoritative in-memory copy for the running process and is the
// only component that talks to the storage engine.
package content

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/eringen/folio/storage"
)

var (
	// ErrNoPersistence is returned by LoadAll when the store runs without a
	// storage engine. Changes are kept for the session only.
	ErrNoPersistence = errors.New("content: persistent storage unavailable, using in-memory session")

	// ErrInvalid marks input rejected before anything is written.
	ErrInvalid = errors.New("content: invalid input")

	// ErrNotFound is returned when removing an entry that does not exist.
	ErrNotFound = errors.New("content: entry not found")
)

// Engine is the part of *storage.DB the store depends on.
type Engine interface {
	Get(ctx context.Context, c storage.Collection, key string) (storage.Record, bool, error)
	Put(ctx context.Context, c storage.Collection, key string, value any) error
	ReplaceAll(ctx context.Context, c storage.Collection, items []any) ([]int64, error)
	GetAll(ctx context.Context, c storage.Collection) ([]storage.Record, error)
}

// Store mirrors every collection in memory and writes through to the
// engine. Writes to the same collection are serialized; a failed write
// leaves the mirror unchanged.
type Store struct {
	engine Engine
	log    *zap.Logger

	// Serialize writes per singleton collection. When both are needed,
	// editWrite is taken before contentWrite.
	contentWrite sync.Mutex
	imageWrite   sync.Mutex
	editWrite    sync.Mutex

	mu       sync.RWMutex
	content  SiteContent
	image    string
	editMode bool

	skills      *listMirror[Skill]
	experiences *listMirror[Experience]
	posts       *listMirror[BlogPost]

	localID atomic.Int64 // ids handed out when running without an engine
}

// New creates a Store over engine, initialised with the default content.
// Pass a nil engine (an untyped nil, not a nil *storage.DB) for an
// in-memory-only session.
func New(engine Engine, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		engine:      engine,
		log:         logger.Named("content"),
		content:     DefaultContent(),
		skills:      &listMirror[Skill]{c: storage.Skills},
		experiences: &listMirror[Experience]{c: storage.Experiences},
		posts:       &listMirror[BlogPost]{c: storage.BlogPosts},
	}
}

// Persistent reports whether changes survive a restart.
func (s *Store) Persistent() bool {
	return s.engine != nil
}

// LoadAll loads every collection and the edit-mode flag concurrently. Each
// load that fails falls back to its default independently; the error result
// is reserved for a session without storage.
func (s *Store) LoadAll(ctx context.Context) error {
	if s.engine == nil {
		return ErrNoPersistence
	}

	var (
		content     SiteContent
		skills      []Skill
		experiences []Experience
		posts       []BlogPost
		image       string
		flag        *bool
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		c, err := s.loadContent(gctx)
		if err != nil {
			s.log.Warn("load content failed, using defaults", zap.Error(err))
			c = DefaultContent()
		}
		content = c
		return nil
	})
	g.Go(func() error {
		skills = s.skills.load(gctx, s)
		return nil
	})
	g.Go(func() error {
		experiences = s.experiences.load(gctx, s)
		return nil
	})
	g.Go(func() error {
		posts = s.posts.load(gctx, s)
		return nil
	})
	g.Go(func() error {
		data, err := s.loadProfileImage(gctx)
		if err != nil {
			s.log.Warn("load profile image failed", zap.Error(err))
		}
		image = data
		return nil
	})
	g.Go(func() error {
		on, ok, err := s.loadEditMode(gctx)
		if err != nil {
			s.log.Warn("load edit mode failed", zap.Error(err))
			return nil
		}
		if ok {
			flag = &on
		}
		return nil
	})
	_ = g.Wait()

	s.skills.set(skills)
	s.experiences.set(experiences)
	s.posts.set(posts)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.content = content
	s.image = image
	if flag != nil {
		s.editMode = *flag
	} else {
		// Older data only carried the flag inside the content metadata.
		s.editMode = editModeFromContent(content)
	}
	s.log.Info("content loaded",
		zap.Int("skills", len(skills)),
		zap.Int("experiences", len(experiences)),
		zap.Int("posts", len(posts)),
		zap.Bool("editMode", s.editMode))
	return nil
}

func (s *Store) loadContent(ctx context.Context) (SiteContent, error) {
	rec, ok, err := s.engine.Get(ctx, storage.Content, storage.KeyMainContent)
	if err != nil {
		return nil, err
	}
	if !ok {
		return DefaultContent(), nil
	}
	var c SiteContent
	if err := rec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}
	if err := validateContent(c); err != nil {
		return nil, err
	}
	normalizeContent(c)
	return c, nil
}

func (s *Store) loadProfileImage(ctx context.Context) (string, error) {
	rec, ok, err := s.engine.Get(ctx, storage.ProfileImage, storage.KeyProfile)
	if err != nil || !ok {
		return "", err
	}
	var img profileImageRecord
	if err := rec.Decode(&img); err != nil {
		return "", fmt.Errorf("decode profile image: %w", err)
	}
	return img.Data, nil
}

func (s *Store) loadEditMode(ctx context.Context) (on, ok bool, err error) {
	rec, ok, err := s.engine.Get(ctx, storage.EditMode, storage.KeyEditModeState)
	if err != nil || !ok {
		return false, false, err
	}
	var flag editModeRecord
	if err := rec.Decode(&flag); err != nil {
		return false, false, fmt.Errorf("decode edit mode: %w", err)
	}
	return flag.IsEnabled, true, nil
}

// Content returns a copy of the site text.
func (s *Store) Content() SiteContent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.content.Clone()
}

// Skills returns a copy of the skills list.
func (s *Store) Skills() []Skill { return s.skills.snapshot() }

// Experiences returns a copy of the experience timeline.
func (s *Store) Experiences() []Experience { return s.experiences.snapshot() }

// BlogPosts returns a copy of the blog posts.
func (s *Store) BlogPosts() []BlogPost { return s.posts.snapshot() }

// ProfileImage returns the stored data URI, if any.
func (s *Store) ProfileImage() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.image, s.image != ""
}

// EditMode reports whether in-place editing is on.
func (s *Store) EditMode() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.editMode
}

// SaveContent replaces the site text. The current edit-mode flag is carried
// into the saved customFields so both copies stay in sync.
func (s *Store) SaveContent(ctx context.Context, c SiteContent) error {
	if err := validateContent(c); err != nil {
		return err
	}
	s.contentWrite.Lock()
	defer s.contentWrite.Unlock()

	next := c.Clone()
	normalizeContent(next)
	mirrorEditMode(next, s.EditMode())
	return s.putContent(ctx, next)
}

// putContent persists next and swaps it into the mirror. Callers hold
// contentWrite.
func (s *Store) putContent(ctx context.Context, next SiteContent) error {
	if s.engine != nil {
		if err := s.engine.Put(ctx, storage.Content, storage.KeyMainContent, next); err != nil {
			s.log.Error("save content failed", zap.Error(err))
			return err
		}
	}
	s.mu.Lock()
	s.content = next
	s.mu.Unlock()
	return nil
}

// UpdateText sets a single text field of one language, e.g. "siteTitle" or
// "sections.about".
func (s *Store) UpdateText(ctx context.Context, lang, field, value string) error {
	s.contentWrite.Lock()
	defer s.contentWrite.Unlock()

	next := s.Content()
	lc, ok := next[lang]
	if !ok || lc == nil {
		return fmt.Errorf("%w: unknown language %q", ErrInvalid, lang)
	}
	ptr := textField(lc, field)
	if ptr == nil {
		return fmt.Errorf("%w: unknown field %q", ErrInvalid, field)
	}
	*ptr = value
	return s.putContent(ctx, next)
}

func textField(lc *LangContent, field string) *string {
	switch field {
	case "siteTitle":
		return &lc.SiteTitle
	case "welcomeTitle":
		return &lc.WelcomeTitle
	case "welcomeSubtitle":
		return &lc.WelcomeSubtitle
	case "aboutDescription":
		return &lc.AboutDescription
	case "contactEmail":
		return &lc.ContactEmail
	case "sections.about":
		return &lc.Sections.About
	case "sections.skills":
		return &lc.Sections.Skills
	case "sections.experience":
		return &lc.Sections.Experience
	case "sections.blog":
		return &lc.Sections.Blog
	case "sections.contact":
		return &lc.Sections.Contact
	case "buttons.contact":
		return &lc.Buttons.Contact
	case "buttons.downloadCV":
		return &lc.Buttons.DownloadCV
	case "buttons.submitContact":
		return &lc.Buttons.SubmitContact
	case "contactForm.name":
		return &lc.ContactForm.Name
	case "contactForm.email":
		return &lc.ContactForm.Email
	case "contactForm.message":
		return &lc.ContactForm.Message
	}
	return nil
}

// SaveProfileImage stores a data-URI encoded image, replacing the previous one.
func (s *Store) SaveProfileImage(ctx context.Context, data string) error {
	if !strings.HasPrefix(data, "data:image/") {
		return fmt.Errorf("%w: profile image must be an image data URI", ErrInvalid)
	}
	s.imageWrite.Lock()
	defer s.imageWrite.Unlock()

	if s.engine != nil {
		if err := s.engine.Put(ctx, storage.ProfileImage, storage.KeyProfile, profileImageRecord{Data: data}); err != nil {
			s.log.Error("save profile image failed", zap.Error(err))
			return err
		}
	}
	s.mu.Lock()
	s.image = data
	s.mu.Unlock()
	return nil
}

// SetEditMode persists the flag and mirrors it into customFields of every
// language. If the content write fails the flag is restored.
func (s *Store) SetEditMode(ctx context.Context, on bool) error {
	s.editWrite.Lock()
	defer s.editWrite.Unlock()
	s.contentWrite.Lock()
	defer s.contentWrite.Unlock()

	prev := s.EditMode()
	next := s.Content()
	mirrorEditMode(next, on)

	if s.engine != nil {
		if err := s.engine.Put(ctx, storage.EditMode, storage.KeyEditModeState, editModeRecord{IsEnabled: on}); err != nil {
			s.log.Error("save edit mode failed", zap.Error(err))
			return err
		}
		if err := s.engine.Put(ctx, storage.Content, storage.KeyMainContent, next); err != nil {
			s.log.Error("mirror edit mode into content failed", zap.Error(err))
			if rerr := s.engine.Put(ctx, storage.EditMode, storage.KeyEditModeState, editModeRecord{IsEnabled: prev}); rerr != nil {
				s.log.Error("restore edit mode failed", zap.Error(rerr))
			}
			return err
		}
	}

	s.mu.Lock()
	s.editMode = on
	s.content = next
	s.mu.Unlock()
	return nil
}

// SaveSkills replaces the whole skills list.
func (s *Store) SaveSkills(ctx context.Context, skills []Skill) error {
	_, err := s.skills.replace(ctx, s, skills)
	return err
}

// SaveExperiences replaces the whole experience timeline.
func (s *Store) SaveExperiences(ctx context.Context, experiences []Experience) error {
	_, err := s.experiences.replace(ctx, s, experiences)
	return err
}

// SaveBlogPosts replaces the whole list of blog posts.
func (s *Store) SaveBlogPosts(ctx context.Context, posts []BlogPost) error {
	_, err := s.posts.replace(ctx, s, posts)
	return err
}

// AddSkill appends a skill and saves the list.
func (s *Store) AddSkill(ctx context.Context, sk Skill) (Skill, error) {
	sk.Icon = strings.TrimSpace(sk.Icon)
	sk.Name = strings.TrimSpace(sk.Name)
	if sk.Icon == "" || sk.Name == "" {
		return Skill{}, fmt.Errorf("%w: skill needs an icon and a name", ErrInvalid)
	}
	return s.skills.add(ctx, s, sk)
}

// AddExperience appends an experience entry and saves the timeline.
func (s *Store) AddExperience(ctx context.Context, e Experience) (Experience, error) {
	e.Period = strings.TrimSpace(e.Period)
	e.Title = strings.TrimSpace(e.Title)
	e.Company = strings.TrimSpace(e.Company)
	if e.Period == "" || e.Title == "" || e.Company == "" {
		return Experience{}, fmt.Errorf("%w: experience needs a period, a title and a company", ErrInvalid)
	}
	return s.experiences.add(ctx, s, e)
}

// AddBlogPost appends a post, dated today unless a date is given.
func (s *Store) AddBlogPost(ctx context.Context, p BlogPost) (BlogPost, error) {
	p.Title = strings.TrimSpace(p.Title)
	if p.Title == "" || strings.TrimSpace(p.Content) == "" {
		return BlogPost{}, fmt.Errorf("%w: post needs a title and content", ErrInvalid)
	}
	if strings.TrimSpace(p.Date) == "" {
		p.Date = today()
	}
	return s.posts.add(ctx, s, p)
}

// RemoveSkill deletes the skill with the given id.
func (s *Store) RemoveSkill(ctx context.Context, id int64) error {
	return s.skills.remove(ctx, s, id)
}

// RemoveExperience deletes the experience with the given id.
func (s *Store) RemoveExperience(ctx context.Context, id int64) error {
	return s.experiences.remove(ctx, s, id)
}

// RemoveBlogPost deletes the post with the given id.
func (s *Store) RemoveBlogPost(ctx context.Context, id int64) error {
	return s.posts.remove(ctx, s, id)
}

// validateContent requires exactly one non-nil entry per supported language.
func validateContent(c SiteContent) error {
	if len(c) != len(Languages) {
		return fmt.Errorf("%w: content must hold exactly %v, got %d languages", ErrInvalid, Languages, len(c))
	}
	for _, lang := range Languages {
		if lc, ok := c[lang]; !ok || lc == nil {
			return fmt.Errorf("%w: content for %q is missing", ErrInvalid, lang)
		}
	}
	return nil
}

func normalizeContent(c SiteContent) {
	for _, lc := range c {
		if lc.CustomFields == nil {
			lc.CustomFields = map[string]string{}
		}
	}
}

func mirrorEditMode(c SiteContent, on bool) {
	for _, lc := range c {
		if lc.CustomFields == nil {
			lc.CustomFields = map[string]string{}
		}
		lc.CustomFields[EditModeField] = fmt.Sprint(on)
	}
}

func editModeFromContent(c SiteContent) bool {
	for _, lc := range c {
		if lc != nil && lc.CustomFields[EditModeField] == "true" {
			return true
		}
	}
	return false
}
