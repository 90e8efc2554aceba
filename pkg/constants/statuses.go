package constants

// Синонимы статусов (англ./араб.). Ключи сравниваются после нормализации:
// trim, case fold, '_' и '-' заменены пробелом.
var (
	CompletedStatusSynonyms = []string{
		"completed", "complete", "done", "finished", "approved", "closed",
		"مكتمل", "مكتملة", "منجز", "تم", "تم الإنجاز",
	}
	RejectedStatusSynonyms = []string{
		"rejected", "declined", "cancelled", "canceled",
		"مرفوض", "مرفوضة", "ملغي", "ملغى", "ملغاة",
		"الإلغاء", "إلغاء", "الرفض", "رفض",
	}
	InReviewStatusSynonyms = []string{
		"in review", "under review", "review", "pending", "in progress", "active", "processing",
		"قيد المراجعة", "تحت المراجعة", "قيد التنفيذ", "جاري", "جارية", "نشط",
	}
)

// Синонимы, которые принимаются только целой меткой: "تم" само по себе
// значит "выполнено", а в "تم الإلغاء" это лишь вспомогательное слово.
var ExactOnlyStatusSynonyms = []string{"تم"}

// Слова-отрицания: "غير مكتمل", "not approved" не должны становиться completed.
var NegationStatusWords = []string{"not", "un", "non", "no", "غير", "لم", "لا", "ليس"}
