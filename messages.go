package folio

import "github.com/eringen/folio/content"

// Message keys shown to the visitor as transient notifications.
const (
	MsgLoadFailed         = "load_failed"
	MsgContentSaveFailed  = "content_save_failed"
	MsgSkillsSaveFailed   = "skills_save_failed"
	MsgExpSaveFailed      = "experiences_save_failed"
	MsgPostsSaveFailed    = "posts_save_failed"
	MsgSkillAdded         = "skill_added"
	MsgSkillAddFailed     = "skill_add_failed"
	MsgExpAdded           = "experience_added"
	MsgExpAddFailed       = "experience_add_failed"
	MsgPostPublished      = "post_published"
	MsgPostPublishFailed  = "post_publish_failed"
	MsgInvalidImage       = "invalid_image"
	MsgImageTooLarge      = "image_too_large"
	MsgImageUpdated       = "image_updated"
	MsgImageSaveFailed    = "image_save_failed"
	MsgImageReadFailed    = "image_read_failed"
	MsgEditModeOn         = "edit_mode_on"
	MsgEditModeOff        = "edit_mode_off"
	MsgEditModeRequired   = "edit_mode_required"
	MsgLightMode          = "light_mode"
	MsgDarkMode           = "dark_mode"
	MsgContactSent        = "contact_sent"
	MsgContactFailed      = "contact_failed"
	MsgContactRateLimited = "contact_rate_limited"
	MsgNameRequired       = "name_required"
	MsgEmailInvalid       = "email_invalid"
	MsgMessageRequired    = "message_required"
	MsgInvalidInput       = "invalid_input"
	MsgNotFound           = "not_found"
)

var messages = map[string][2]string{
	// {ar, en}
	MsgLoadFailed:         {"حدث خطأ أثناء تحميل الموقع", "Error loading the website"},
	MsgContentSaveFailed:  {"حدث خطأ في حفظ المحتوى!", "Error saving content!"},
	MsgSkillsSaveFailed:   {"حدث خطأ في حفظ المهارات!", "Error saving skills!"},
	MsgExpSaveFailed:      {"حدث خطأ في حفظ الخبرات!", "Error saving experiences!"},
	MsgPostsSaveFailed:    {"حدث خطأ في حفظ المنشورات!", "Error saving blog posts!"},
	MsgSkillAdded:         {"تم إضافة المهارة بنجاح!", "Skill added successfully!"},
	MsgSkillAddFailed:     {"حدث خطأ أثناء إضافة المهارة", "Error adding skill"},
	MsgExpAdded:           {"تم إضافة الخبرة بنجاح!", "Experience added successfully!"},
	MsgExpAddFailed:       {"حدث خطأ أثناء إضافة الخبرة", "Error adding experience"},
	MsgPostPublished:      {"تم نشر المقال بنجاح!", "Post published successfully!"},
	MsgPostPublishFailed:  {"حدث خطأ أثناء نشر المقال", "Error publishing post"},
	MsgInvalidImage:       {"يرجى اختيار ملف صورة صالح!", "Please select a valid image file!"},
	MsgImageTooLarge:      {"حجم الصورة كبير جداً! يرجى اختيار صورة أصغر من 5MB", "Image size is too large! Please select an image smaller than 5MB"},
	MsgImageUpdated:       {"تم تحديث الصورة بنجاح!", "Image updated successfully!"},
	MsgImageSaveFailed:    {"حدث خطأ في حفظ الصورة", "Error saving image"},
	MsgImageReadFailed:    {"حدث خطأ في قراءة الملف!", "Error reading file!"},
	MsgEditModeOn:         {"تم تفعيل وضع التحرير", "Edit mode enabled"},
	MsgEditModeOff:        {"تم إلغاء وضع التحرير", "Edit mode disabled"},
	MsgEditModeRequired:   {"يجب تفعيل وضع التحرير أولاً", "Enable edit mode first"},
	MsgLightMode:          {"تم تفعيل الوضع الفاتح", "Light mode enabled"},
	MsgDarkMode:           {"تم تفعيل الوضع الداكن", "Dark mode enabled"},
	MsgContactSent:        {"تم إرسال رسالتك بنجاح!", "Your message has been sent successfully!"},
	MsgContactFailed:      {"حدث خطأ في إرسال الرسالة", "Error sending message"},
	MsgContactRateLimited: {"محاولات كثيرة، يرجى المحاولة لاحقاً", "Too many attempts, please try again later"},
	MsgNameRequired:       {"يرجى إدخال الاسم", "Please enter your name"},
	MsgEmailInvalid:       {"يرجى إدخال بريد إلكتروني صحيح", "Please enter a valid email"},
	MsgMessageRequired:    {"يرجى إدخال رسالتك", "Please enter your message"},
	MsgInvalidInput:       {"البيانات المدخلة غير صالحة", "Invalid input"},
	MsgNotFound:           {"العنصر غير موجود", "Item not found"},
}

// Message returns the notification text for key in lang. Unknown languages
// get Arabic; unknown keys are returned as is.
func Message(lang, key string) string {
	m, ok := messages[key]
	if !ok {
		return key
	}
	if lang == content.LangEnglish {
		return m[1]
	}
	return m[0]
}
