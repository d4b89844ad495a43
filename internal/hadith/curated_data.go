package hadith

func bookNumber(n int) *int { return &n }

// curatedRecords is the hand-entered dataset served without any network
// call. It intentionally covers only the best-known texts; anything beyond
// it comes from the CDN.
var curatedRecords = []Record{
	{
		CollectionID:    "bukhari",
		BookNumber:      bookNumber(1),
		HadithNumber:    1,
		ArabicText:      "إنما الأعمال بالنيات وإنما لكل امرئ ما نوى",
		EnglishText:     "Narrated 'Umar bin Al-Khattab: I heard Allah's Messenger (ﷺ) saying, \"The reward of deeds depends upon the intentions and every person will get the reward according to what he has intended.\"",
		PrimaryNarrator: "'Umar bin Al-Khattab",
		Grade:           GradeSahih,
		Reference:       "Sahih al-Bukhari 1",
		InBookReference: "Book 1, Hadith 1",
	},
	{
		CollectionID:    "bukhari",
		BookNumber:      bookNumber(2),
		HadithNumber:    8,
		ArabicText:      "بني الإسلام على خمس شهادة أن لا إله إلا الله وأن محمدا رسول الله وإقام الصلاة وإيتاء الزكاة والحج وصوم رمضان",
		EnglishText:     "Narrated Ibn 'Umar: Allah's Messenger (ﷺ) said: Islam is based on (the following) five (principles): to testify that none has the right to be worshipped but Allah and Muhammad is Allah's Messenger, to offer the prayers dutifully and perfectly, to pay Zakat, to perform Hajj, and to observe fast during the month of Ramadan.",
		PrimaryNarrator: "Ibn 'Umar",
		Grade:           GradeSahih,
		Reference:       "Sahih al-Bukhari 8",
		InBookReference: "Book 2, Hadith 1",
	},
	{
		CollectionID:    "bukhari",
		BookNumber:      bookNumber(2),
		HadithNumber:    13,
		ArabicText:      "لا يؤمن أحدكم حتى يحب لأخيه ما يحب لنفسه",
		EnglishText:     "Narrated Anas: The Prophet (ﷺ) said, \"None of you will have faith till he wishes for his (Muslim) brother what he likes for himself.\"",
		PrimaryNarrator: "Anas",
		Grade:           GradeSahih,
		Reference:       "Sahih al-Bukhari 13",
		InBookReference: "Book 2, Hadith 6",
	},
	{
		CollectionID:    "muslim",
		BookNumber:      bookNumber(1),
		HadithNumber:    1,
		ArabicText:      "الإيمان أن تؤمن بالله وملائكته وكتبه ورسله واليوم الآخر وتؤمن بالقدر خيره وشره",
		EnglishText:     "It was narrated from Yahya b. Ya'mur that the first man who discussed Qadr in Basra was Ma'bad al-Juhani; the hadith of Jibril on Islam, Iman and Ihsan follows.",
		PrimaryNarrator: "Yahya b. Ya'mur",
		Grade:           GradeSahih,
		Reference:       "Sahih Muslim 1",
		InBookReference: "Book 1, Hadith 1",
	},
	{
		CollectionID:    "nawawi40",
		HadithNumber:    1,
		ArabicText:      "إنما الأعمال بالنيات وإنما لكل امرئ ما نوى",
		EnglishText:     "On the authority of 'Umar ibn al-Khattab, who said: Actions are but by intentions, and every man shall have only that which he intended.",
		PrimaryNarrator: "'Umar ibn al-Khattab",
		Grade:           GradeSahih,
		Reference:       "40 Hadith Nawawi 1",
	},
	{
		CollectionID:    "nawawi40",
		HadithNumber:    13,
		ArabicText:      "لا يؤمن أحدكم حتى يحب لأخيه ما يحب لنفسه",
		EnglishText:     "On the authority of Anas ibn Malik, the Prophet (ﷺ) said: None of you truly believes until he loves for his brother what he loves for himself.",
		PrimaryNarrator: "Anas ibn Malik",
		Grade:           GradeSahih,
		Reference:       "40 Hadith Nawawi 13",
	},
}
