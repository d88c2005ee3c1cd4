package content

// Supported languages.
const (
	LangArabic  = "ar"
	LangEnglish = "en"
)

// Languages lists the supported languages, default first.
var Languages = []string{LangArabic, LangEnglish}

// EditModeField is the customFields key mirroring the edit-mode flag.
const EditModeField = "editMode"

// SiteContent is the editable text of the site, keyed by language code.
type SiteContent map[string]*LangContent

// LangContent is the site text for one language.
type LangContent struct {
	SiteTitle        string            `json:"siteTitle" yaml:"siteTitle"`
	WelcomeTitle     string            `json:"welcomeTitle" yaml:"welcomeTitle"`
	WelcomeSubtitle  string            `json:"welcomeSubtitle" yaml:"welcomeSubtitle"`
	AboutDescription string            `json:"aboutDescription" yaml:"aboutDescription"`
	ContactEmail     string            `json:"contactEmail" yaml:"contactEmail"`
	Sections         Sections          `json:"sections" yaml:"sections"`
	Buttons          Buttons           `json:"buttons" yaml:"buttons"`
	Menu             []string          `json:"menu" yaml:"menu"`
	ContactForm      ContactForm       `json:"contactForm" yaml:"contactForm"`
	CustomFields     map[string]string `json:"customFields" yaml:"customFields"`
}

// Sections holds the section headings.
type Sections struct {
	About      string `json:"about" yaml:"about"`
	Skills     string `json:"skills" yaml:"skills"`
	Experience string `json:"experience" yaml:"experience"`
	Blog       string `json:"blog" yaml:"blog"`
	Contact    string `json:"contact" yaml:"contact"`
}

// Buttons holds button labels.
type Buttons struct {
	Contact       string `json:"contact" yaml:"contact"`
	DownloadCV    string `json:"downloadCV" yaml:"downloadCV"`
	SubmitContact string `json:"submitContact" yaml:"submitContact"`
}

// ContactForm holds the contact form field labels.
type ContactForm struct {
	Name    string `json:"name" yaml:"name"`
	Email   string `json:"email" yaml:"email"`
	Message string `json:"message" yaml:"message"`
}

// Skill is one entry of the skills list. ID is assigned by storage.
type Skill struct {
	ID   int64  `json:"id,omitempty" yaml:"id,omitempty"`
	Icon string `json:"icon" yaml:"icon"`
	Name string `json:"name" yaml:"name"`
}

// Experience is one entry of the experience timeline.
type Experience struct {
	ID          int64  `json:"id,omitempty" yaml:"id,omitempty"`
	Period      string `json:"period" yaml:"period"`
	Title       string `json:"title" yaml:"title"`
	Company     string `json:"company" yaml:"company"`
	Description string `json:"description" yaml:"description"`
}

// BlogPost is one blog entry.
type BlogPost struct {
	ID      int64  `json:"id,omitempty" yaml:"id,omitempty"`
	Date    string `json:"date" yaml:"date"`
	Title   string `json:"title" yaml:"title"`
	Content string `json:"content" yaml:"content"`
}

// profileImageRecord and editModeRecord are the persisted singleton shapes.
type profileImageRecord struct {
	Data string `json:"data"`
}

type editModeRecord struct {
	IsEnabled bool `json:"isEnabled"`
}

// Clone returns a deep copy of c.
func (c SiteContent) Clone() SiteContent {
	if c == nil {
		return nil
	}
	out := make(SiteContent, len(c))
	for lang, lc := range c {
		if lc == nil {
			out[lang] = nil
			continue
		}
		cp := *lc
		if lc.Menu != nil {
			cp.Menu = append([]string(nil), lc.Menu...)
		}
		if lc.CustomFields != nil {
			cp.CustomFields = make(map[string]string, len(lc.CustomFields))
			for k, v := range lc.CustomFields {
				cp.CustomFields[k] = v
			}
		}
		out[lang] = &cp
	}
	return out
}

// Lang returns the content for lang, falling back to the default language.
func (c SiteContent) Lang(lang string) *LangContent {
	if lc, ok := c[lang]; ok && lc != nil {
		return lc
	}
	return c[LangArabic]
}
