package content

// DefaultContent returns the placeholder site text used when nothing has
// been saved yet or the stored copy cannot be read.
func DefaultContent() SiteContent {
	return SiteContent{
		LangArabic: {
			SiteTitle:        "موقعي الشخصي",
			WelcomeTitle:     "مرحباً، أنا مطور ويب",
			WelcomeSubtitle:  "أقوم بتطوير تطبيقات الويب الحديثة",
			AboutDescription: "أنا مطور ويب متخصص في تطوير تطبيقات الويب الحديثة باستخدام أحدث التقنيات. أعمل على تطوير واجهات المستخدم وتطبيقات الويب التفاعلية.",
			ContactEmail:     "example@example.com",
			Sections: Sections{
				About:      "نبذة عني",
				Skills:     "المهارات",
				Experience: "الخبرات",
				Blog:       "المدونة",
				Contact:    "اتصل بي",
			},
			Buttons: Buttons{
				Contact:       "اتصل بي",
				DownloadCV:    "تحميل السيرة الذاتية",
				SubmitContact: "إرسال",
			},
			Menu: []string{"الرئيسية", "نبذة عني", "المهارات", "الخبرات", "المدونة", "اتصل بي"},
			ContactForm: ContactForm{
				Name:    "الاسم",
				Email:   "البريد الإلكتروني",
				Message: "الرسالة",
			},
			CustomFields: map[string]string{},
		},
		LangEnglish: {
			SiteTitle:        "My Personal Website",
			WelcomeTitle:     "Hello, I am a Web Developer",
			WelcomeSubtitle:  "I develop modern web applications",
			AboutDescription: "I am a web developer specialized in developing modern web applications using the latest technologies. I work on developing user interfaces and interactive web applications.",
			ContactEmail:     "example@example.com",
			Sections: Sections{
				About:      "About Me",
				Skills:     "Skills",
				Experience: "Experience",
				Blog:       "Blog",
				Contact:    "Contact Me",
			},
			Buttons: Buttons{
				Contact:       "Contact Me",
				DownloadCV:    "Download CV",
				SubmitContact: "Submit",
			},
			Menu: []string{"Home", "About", "Skills", "Experience", "Blog", "Contact"},
			ContactForm: ContactForm{
				Name:    "Name",
				Email:   "Email",
				Message: "Message",
			},
			CustomFields: map[string]string{},
		},
	}
}
