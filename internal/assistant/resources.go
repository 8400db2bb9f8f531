package assistant

// Helpline is one entry in the mental health resource directory.
type Helpline struct {
	Name        string `json:"name"`
	Number      string `json:"number"`
	Description string `json:"description"`
}

// Resources bundles the helpline directory with the safety disclaimer.
type Resources struct {
	Helplines  []Helpline `json:"helplines"`
	Disclaimer string     `json:"disclaimer"`
}

var mentalHealthResources = map[Locale]Resources{
	LocaleEnglish: {
		Helplines: []Helpline{
			{
				Name:        "National Suicide Prevention Lifeline (US)",
				Number:      "988",
				Description: "24/7 free and confidential support",
			},
			{
				Name:        "Crisis Text Line (US)",
				Number:      "Text HOME to 741741",
				Description: "24/7 crisis support via text",
			},
			{
				Name:        "Vandrevala Foundation (India)",
				Number:      "+91 9999 666 555",
				Description: "24/7 mental health helpline",
			},
		},
		Disclaimer: "⚠️ **Important**: I am an AI assistant, not a mental health professional. If you are experiencing a mental health crisis, please contact emergency services or a mental health professional immediately.",
	},
	LocaleHindi: {
		Helplines: []Helpline{
			{
				Name:        "वंद्रेवाला फाउंडेशन (भारत)",
				Number:      "+91 9999 666 555",
				Description: "24/7 मानसिक स्वास्थ्य हेल्पलाइन",
			},
			{
				Name:        "कनेक्ट इंडिया",
				Number:      "+91 9152987821",
				Description: "मानसिक स्वास्थ्य सहायता",
			},
			{
				Name:        "AASRA (आसरा)",
				Number:      "+91 9820466726",
				Description: "संकट में सहायता के लिए",
			},
		},
		Disclaimer: "⚠️ **महत्वपूर्ण**: मैं एक AI सहायक हूँ, मानसिक स्वास्थ्य पेशेवर नहीं। यदि आप मानसिक स्वास्थ्य संकट का सामना कर रहे हैं, तो कृपया तुरंत आपातकालीन सेवाओं या मानसिक स्वास्थ्य पेशेवर से संपर्क करें।",
	},
}

// MentalHealthResources returns the helpline directory for the locale,
// defaulting to the English table.
func MentalHealthResources(locale Locale) Resources {
	if res, ok := mentalHealthResources[locale]; ok {
		return res
	}
	return mentalHealthResources[LocaleEnglish]
}
