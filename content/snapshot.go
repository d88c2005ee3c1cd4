package content

// Snapshot is a point-in-time copy of every collection, used for exports.
type Snapshot struct {
	Content      SiteContent  `json:"content" yaml:"content"`
	Skills       []Skill      `json:"skills" yaml:"skills"`
	Experiences  []Experience `json:"experiences" yaml:"experiences"`
	BlogPosts    []BlogPost   `json:"blogPosts" yaml:"blogPosts"`
	ProfileImage string       `json:"profileImage,omitempty" yaml:"profileImage,omitempty"`
	EditMode     bool         `json:"editMode" yaml:"editMode"`
}

// Snapshot returns a copy of the current mirror.
func (s *Store) Snapshot() Snapshot {
	img, _ := s.ProfileImage()
	return Snapshot{
		Content:      s.Content(),
		Skills:       s.Skills(),
		Experiences:  s.Experiences(),
		BlogPosts:    s.BlogPosts(),
		ProfileImage: img,
		EditMode:     s.EditMode(),
	}
}
