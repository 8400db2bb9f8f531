package assistant

// Canned response content, keyed by locale and emotion. Loaded once at process
// start and read concurrently; never mutated after init.

var empatheticResponses = map[Locale]map[Emotion][]string{
	LocaleEnglish: {
		EmotionStressed: {
			"I understand you're feeling stressed. Let's take a moment to breathe together.",
			"Stress can be overwhelming. I'm here to help you find some calm.",
			"It's okay to feel stressed. Let's try a quick relaxation technique.",
		},
		EmotionSad: {
			"I'm sorry you're feeling sad. Your feelings are valid and I'm here to support you.",
			"Sadness is a natural emotion. Let's explore some gentle activities that might help.",
			"I hear that you're going through a difficult time. Would you like to try a calming exercise?",
		},
		EmotionAnxious: {
			"Anxiety can feel overwhelming. Let's work together to find your center.",
			"I understand anxiety can be difficult. Let's try some grounding techniques.",
			"Take a deep breath. I'm here to help you through this anxious moment.",
		},
		EmotionDefault: {
			"I'm here to listen and support you. How can I help you today?",
			"Thank you for sharing with me. Let's explore how I can assist you.",
			"I'm glad you reached out. What would be most helpful for you right now?",
		},
	},
	LocaleHindi: {
		EmotionStressed: {
			"मैं समझ सकता हूँ कि आप तनाव महसूस कर रहे हैं। आइए एक साथ सांस लेते हैं।",
			"तनाव कभी-कभी बहुत भारी लग सकता है। मैं यहाँ आपकी शांति पाने में मदद करने के लिए हूँ।",
			"तनाव महसूस करना सामान्य है। आइए एक आसान आराम की तकनीक आज़माते हैं।",
		},
		EmotionSad: {
			"मुझे खुशी है कि आपने मुझसे साझा किया। आपकी भावनाएं वैध हैं और मैं आपका साथ देने के लिए यहाँ हूँ।",
			"उदासी एक प्राकृतिक भावना है। आइए कुछ सौम्य गतिविधियों का पता लगाते हैं जो मदद कर सकती हैं।",
			"मैं समझ सकता हूँ कि आप कठिन समय से गुज़र रहे हैं। क्या आप कोई शांत करने वाला अभ्यास करना चाहेंगे?",
		},
		EmotionAnxious: {
			"चिंता कभी-कभी भारी लग सकती है। आइए मिलकर आपके केंद्र को खोजने की कोशिश करते हैं।",
			"मैं समझ सकता हूँ कि चिंता कठिन हो सकती है। आइए कुछ ग्राउंडिंग तकनीकें आज़माते हैं।",
			"एक गहरी सांस लें। मैं इस चिंताजनक क्षण में आपकी मदद करने के लिए हूँ।",
		},
		EmotionDefault: {
			"मैं यहाँ सुनने और आपका साथ देने के लिए हूँ। आज मैं आपकी कैसे मदद कर सकता हूँ?",
			"मुझसे साझा करने के लिए धन्यवाद। आइए देखते हैं कि मैं आपकी कैसे सहायता कर सकता हूँ।",
			"मुझे खुशी है कि आपने संपर्क किया। अभी आपके लिए सबसे उपयोगी क्या होगा?",
		},
	},
}

var proactiveFollowUps = map[Locale]map[Emotion]string{
	LocaleEnglish: {
		EmotionStressed: "What's been the main source of your stress lately? Sometimes talking about it can help lighten the load.",
		EmotionSad:      "I'm here to listen. Would you like to share what's been bringing you down, or would you prefer we focus on some uplifting activities?",
		EmotionAnxious:  "Anxiety can be overwhelming. Would you like to try a quick breathing exercise, or would you prefer to talk about what's making you feel anxious?",
		EmotionDefault:  "I'd love to know more about you. What brings you joy in your daily life? Or is there something specific you'd like support with today?",
	},
	LocaleHindi: {
		EmotionStressed: "हाल ही में आपके तनाव का मुख्य कारण क्या रहा है? कभी-कभी इसके बारे में बात करने से मन हल्का हो जाता है।",
		EmotionSad:      "मैं यहाँ सुनने के लिए हूँ। क्या आप साझा करना चाहेंगे कि आपको क्या परेशान कर रहा है, या आप चाहेंगे कि हम कुछ उत्साहजनक गतिविधियों पर ध्यान दें?",
		EmotionAnxious:  "चिंता भारी हो सकती है। क्या आप एक त्वरित सांस की एक्सरसाइज करना चाहेंगे, या आप इस बारे में बात करना पसंद करेंगे कि आपको क्या चिंतित कर रहा है?",
		EmotionDefault:  "मैं आपके बारे में और जानना चाहूंगी। आपके दैनिक जीवन में आपको क्या खुशी देता है? या आज कोई खास बात है जिसके लिए आपको सहारे की जरूरत है?",
	},
}

var stressReliefTips = map[Locale][]string{
	LocaleEnglish: {
		"💡 **Quick Tip**: Try the 5-4-3-2-1 grounding technique. Name 5 things you can see, 4 you can touch, 3 you can hear, 2 you can smell, and 1 you can taste.",
		"💡 **Quick Tip**: Take 5 deep breaths. Breathe in for 4 counts, hold for 4, and breathe out for 6 counts.",
		"💡 **Quick Tip**: Write down three things you're grateful for today, no matter how small.",
		"💡 **Quick Tip**: Step outside if possible, and take a moment to feel the fresh air on your skin.",
		"💡 **Quick Tip**: Place your hand on your heart and remind yourself: 'This feeling will pass, and I am stronger than I know.'",
	},
	LocaleHindi: {
		"💡 **त्वरित सुझाव**: 5-4-3-2-1 ग्राउंडिंग तकनीक आज़माएं। 5 चीज़ें जो आप देख सकते हैं, 4 जो छू सकते हैं, 3 जो सुन सकते हैं, 2 जो सूंघ सकते हैं, और 1 जो चख सकते हैं, उनके नाम बताएं।",
		"💡 **त्वरित सुझाव**: 5 गहरी सांसें लें। 4 गिनती तक सांस अंदर लें, 4 तक रोकें, और 6 गिनती तक छोड़ें।",
		"💡 **त्वरित सुझाव**: आज आप जिन तीन चीज़ों के लिए आभारी हैं, उन्हें लिखें, चाहे वे कितनी भी छोटी हों।",
		"💡 **त्वरित सुझाव**: यदि संभव हो तो बाहर जाएं, और अपनी त्वचा पर ताज़ी हवा महसूस करने के लिए एक पल रुकें।",
		"💡 **त्वरित सुझाव**: अपना हाथ अपने दिल पर रखें और अपने आप से कहें: 'यह भावना गुज़र जाएगी, और मैं जितना जानता हूँ उससे कहीं ज्यादा मज़बूत हूँ।'",
	},
}

var meditationMenus = map[Locale]string{
	LocaleEnglish: `Would you like to try a guided meditation? I can offer:

🧘‍♀️ **Breathing Exercise** (5, 10, or 15 minutes)
🌸 **Body Scan Meditation** (10 or 15 minutes)
🌙 **Mindfulness Practice** (5 or 10 minutes)

Just tell me which type and duration you prefer, like "breathing exercise for 5 minutes" or "body scan for 10 minutes".`,
	LocaleHindi: `क्या आप गाइडेड मेडिटेशन करना चाहेंगे? मैं ये विकल्प दे सकता हूँ:

🧘‍♀️ **सांस का अभ्यास** (5, 10, या 15 मिनट)
🌸 **शरीर स्कैन मेडिटेशन** (10 या 15 मिनट)
🌙 **माइंडफुलनेस अभ्यास** (5 या 10 मिनट)

बस मुझे बताएं कि आप कौन सा प्रकार और कितनी देर का चाहते हैं, जैसे "5 मिनट का सांस अभ्यास" या "10 मिनट का बॉडी स्कैन"।`,
}

// Handshake greetings. Voice mode gets a conversational prompt, text mode a
// structured menu.
var voiceGreetings = map[Locale]string{
	LocaleEnglish: `Perfect! I'll speak with you in English. 😊

Hello! I'm Serenity, your AI mental health companion. I'm here to have a caring conversation with you and provide support through guided meditation, breathing exercises, stress relief techniques, and empathetic listening.

**Now, I'd love to hear from you - how are you feeling today?** Whether you're stressed, anxious, happy, or just want to chat, I'm here to listen and support you through whatever you're experiencing.

*Please use the microphone button to share your thoughts with me.*`,
	LocaleHindi: `बहुत अच्छा! मैं आपसे हिंदी में बात करूंगी। 😊

नमस्ते! मैं Serenity हूँ, आपकी AI मानसिक स्वास्थ्य साथी। मैं यहाँ आपसे प्रेमपूर्ण बातचीत करने और सहारा देने के लिए हूँ - गाइडेड मेडिटेशन, सांस की एक्सरसाइज, तनाव मुक्ति की तकनीकें और सहानुभूतिपूर्ण सुनना।

**अब मुझे बताइए - आज आप कैसा महसूस कर रहे हैं?** चाहे आप तनाव में हों, चिंतित हों, खुश हों, या बस बात करना चाहते हों, मैं यहाँ सुनने और आपके अनुभवों में आपका साथ देने के लिए हूँ।

*कृपया माइक्रोफोन बटन का उपयोग करके अपने विचार मुझसे साझा करें।*`,
}

var textGreetings = map[Locale]string{
	LocaleEnglish: `Perfect! I'll communicate with you in English. 😊

Now, let me introduce myself properly - I'm Serenity, your AI mental health companion. I'm here to provide:

🧘‍♀️ Guided meditation sessions
💨 Breathing exercises
💡 Stress relief techniques
🤗 Empathetic conversation
📞 Mental health resources

**To get started, how are you feeling today?** Are you experiencing any stress, anxiety, or would you simply like to have a mindful conversation?`,
	LocaleHindi: `बहुत अच्छा! मैं आपसे हिंदी में बात करूंगी। 😊

अब मैं अपना परिचय देती हूँ - मैं Serenity हूँ, आपकी AI मानसिक स्वास्थ्य साथी। मैं यहाँ हूँ आपको देने के लिए:

🧘‍♀️ गाइडेड मेडिटेशन सेशन
💨 सांस की एक्सरसाइज
💡 तनाव मुक्ति की तकनीकें
🤗 समझदारी भरी बातचीत
📞 मानसिक स्वास्थ्य संसाधन

**शुरुआत करने के लिए, आज आप कैसा महसूस कर रहे हैं?** क्या आप कोई तनाव, चिंता महसूस कर रहे हैं, या आप बस एक मनपूर्ण बातचीत करना चाहते हैं?`,
}

var fallbackResponses = map[Locale]string{
	LocaleEnglish: "I'm here to help. Could you please tell me more about how you're feeling?",
	LocaleHindi:   "मैं यहाँ मदद करने के लिए हूँ। कृपया मुझे बताएं कि आप कैसा महसूस कर रहे हैं?",
}

// Keyword tables consumed by the composer and classifier.
var (
	stressKeywords  = []string{"stressed", "stress", "overwhelmed", "pressure", "burden", "exhausted"}
	sadKeywords     = []string{"sad", "depressed", "down", "upset", "hurt", "broken", "crying"}
	anxiousKeywords = []string{"anxious", "worried", "nervous", "panic", "afraid", "scared", "fear"}

	meditationStems      = []string{"meditat", "breathe", "breath", "calm", "relax", "peace"}
	hindiMeditationTerms = []string{"ध्यान", "शांत", "आराम", "सांस", "मेडिटेशन"}

	englishPreferenceKeywords = []string{"english", "eng", "en", "अंग्रेजी"}
	hindiPreferenceKeywords   = []string{"hindi", "hin", "hi", "हिंदी", "हिन्दी"}

	voiceModePhrases = []string{"communicate in", "would like to communicate", "voice conversation"}
)

func empatheticLines(emotion Emotion, locale Locale) []string {
	byEmotion, ok := empatheticResponses[locale]
	if !ok {
		byEmotion = empatheticResponses[LocaleEnglish]
	}
	lines, ok := byEmotion[emotion]
	if !ok {
		lines = byEmotion[EmotionDefault]
	}
	return lines
}

func followUpFor(emotion Emotion, locale Locale) string {
	byEmotion, ok := proactiveFollowUps[locale]
	if !ok {
		byEmotion = proactiveFollowUps[LocaleEnglish]
	}
	if q, ok := byEmotion[emotion]; ok {
		return q
	}
	return byEmotion[EmotionDefault]
}

func tipsFor(locale Locale) []string {
	if tips, ok := stressReliefTips[locale]; ok {
		return tips
	}
	return stressReliefTips[LocaleEnglish]
}

func meditationMenu(locale Locale) string {
	if menu, ok := meditationMenus[locale]; ok {
		return menu
	}
	return meditationMenus[LocaleEnglish]
}

func fallbackResponse(locale Locale) string {
	if msg, ok := fallbackResponses[locale]; ok {
		return msg
	}
	return fallbackResponses[LocaleEnglish]
}
