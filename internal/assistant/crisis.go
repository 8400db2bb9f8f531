package assistant

import (
	"log/slog"
	"regexp"
	"strings"
)

// Crisis phrase patterns per locale. English patterns anchor on word
// boundaries; RE2 treats \b as ASCII-only, so the Devanagari patterns match as
// bare alternations instead.
var crisisPatternSources = map[Locale][]string{
	LocaleEnglish: {
		`\b(kill myself|end my life|suicide|suicidal)\b`,
		`\b(want to die|wish i was dead|better off dead)\b`,
		`\b(can't go on|can't take it|give up|hopeless)\b`,
		`\b(hurt myself|self harm|cut myself)\b`,
		`\b(no point|worthless|useless|burden)\b`,
	},
	LocaleHindi: {
		`(मरना चाहता|जान देना|आत्महत्या|खुदकुशी)`,
		`(मरना बेहतर|जीना नहीं|जीवन समाप्त)`,
		`(नहीं रह सकता|सहन नहीं|हार मान|निराशा)`,
		`(खुद को नुकसान|आत्म हानि|काटना)`,
		`(कोई फायदा नहीं|बेकार|निरर्थक|बोझ)`,
	},
}

var crisisResponses = map[Locale]string{
	LocaleEnglish: `🚨 **I'm concerned about what you've shared with me.**

I want you to know that you matter, and there are people who can help you through this difficult time. Please consider reaching out to:

**🆘 Emergency Resources:**
• **Emergency Services**: 911 (US) or your local emergency number
• **National Suicide Prevention Lifeline**: 988 (US)
• **Crisis Text Line**: Text HOME to 741741 (US)
• **International Association for Suicide Prevention**: https://www.iasp.info/resources/Crisis_Centres/

**🇮🇳 India Resources:**
• **Vandrevala Foundation**: +91 9999 666 555 (24/7)
• **AASRA**: +91 9820466726
• **iCall**: +91 9152987821

**⚠️ Important**: I am an AI assistant, not a mental health professional. If you are in immediate danger, please contact emergency services right away.

Would you like me to guide you through a calming breathing exercise while you consider reaching out for professional support?`,
	LocaleHindi: `🚨 **आपने जो मुझसे साझा किया है, उससे मैं चिंतित हूँ।**

मैं चाहता हूँ कि आप जानें कि आप महत्वपूर्ण हैं, और ऐसे लोग हैं जो इस कठिन समय में आपकी मदद कर सकते हैं। कृपया संपर्क करने पर विचार करें:

**🆘 आपातकालीन संसाधन:**
• **आपातकालीन सेवाएं**: 102 या आपका स्थानीय आपातकालीन नंबर
• **वंद्रेवाला फाउंडेशन**: +91 9999 666 555 (24/7)
• **AASRA (आसरा)**: +91 9820466726
• **iCall**: +91 9152987821

**🌍 अंतर्राष्ट्रीय संसाधन:**
• **आत्महत्या रोकथाम के लिए अंतर्राष्ट्रीय संघ**: https://www.iasp.info/resources/Crisis_Centres/

**⚠️ महत्वपूर्ण**: मैं एक AI सहायक हूँ, मानसिक स्वास्थ्य पेशेवर नहीं। यदि आप तत्काल खतरे में हैं, तो कृपया तुरंत आपातकालीन सेवाओं से संपर्क करें।

क्या आप चाहेंगे कि मैं आपको एक शांत करने वाली सांस की तकनीक के माध्यम से मार्गदर्शन करूं जबकि आप पेशेवर सहायता लेने पर विचार करते हैं?`,
}

// Scanner matches messages against the fixed crisis-pattern tables.
type Scanner struct {
	patterns map[Locale][]*regexp.Regexp
	logger   *slog.Logger
}

// NewScanner compiles the crisis pattern tables. Patterns are fixed literals;
// a compile failure is a programming error and panics at startup rather than
// shipping a scanner with holes.
func NewScanner(logger *slog.Logger) *Scanner {
	if logger == nil {
		logger = slog.Default()
	}
	compiled := make(map[Locale][]*regexp.Regexp, len(crisisPatternSources))
	for locale, sources := range crisisPatternSources {
		for _, src := range sources {
			compiled[locale] = append(compiled[locale], regexp.MustCompile(`(?i)`+src))
		}
	}
	return &Scanner{patterns: compiled, logger: logger}
}

// Scan reports whether the message contains crisis language. The scan for a
// Hindi message also runs the English table so code-switched phrasing is not
// missed. Internal failure degrades to false; that fail-closed posture is a
// documented product risk, so it is logged at Error rather than swallowed.
func (s *Scanner) Scan(text string, locale Locale) (found bool) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("crisis scan failed, treating as no crisis", "panic", r)
			found = false
		}
	}()

	lowered := strings.ToLower(text)

	patterns, ok := s.patterns[locale]
	if !ok {
		patterns = s.patterns[LocaleEnglish]
	}
	for _, pattern := range patterns {
		if pattern.MatchString(lowered) {
			return true
		}
	}

	if locale == LocaleHindi {
		for _, pattern := range s.patterns[LocaleEnglish] {
			if pattern.MatchString(lowered) {
				return true
			}
		}
	}

	return false
}

// CrisisResponse returns the full helpline template for the locale.
func CrisisResponse(locale Locale) string {
	if resp, ok := crisisResponses[locale]; ok {
		return resp
	}
	return crisisResponses[LocaleEnglish]
}
