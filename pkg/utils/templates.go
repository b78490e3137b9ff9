package utils

import (
	"fmt"
	"strings"

	"raahi/internal/models/response_models"
)

// TemplateData carries everything a body template may interpolate.
type TemplateData struct {
	Count       int
	Destination string
	Budget      int
	Duration    int
	MinPrice    int
	MaxPrice    int
}

var englishGreetings = []string{
	"Hello! I'm RAAHI, your travel assistant. How can I help you plan your trip today?",
	"Welcome to RAAHI! Looking for the perfect travel package? Tell me where you want to go!",
	"Hi there! Ready to explore Pakistan's beautiful destinations? What are you looking for?",
}

var urduGreetings = []string{
	"Assalam-o-Alaikum! Main RAAHI hoon, aapka travel assistant. Kahan jana chahte hain?",
	"Khush amdeed! RAAHI mein aap ko kaun se destinations pasand hain?",
	"Hello! Main aap ki trip plan karne mein madad kar sakta hoon. Bataye kya chahiye?",
}

// GreetingTemplates returns the greeting pool for a language; the caller
// picks one (the random source lives with the caller so tests can pin it).
func GreetingTemplates(language string) []string {
	if language == "urdu" {
		return urduGreetings
	}
	return englishGreetings
}

// ClarifyingQuestion asks for the most important missing field, destination
// first.
func ClarifyingQuestion(language string, missing []string) string {
	urdu := language == "urdu"
	if containsField(missing, "destination") {
		if urdu {
			return "Kaunsa destination chahiye? Hunza, Swat, Naran, Skardu ya Murree?"
		}
		return "Which destination are you interested in? Popular options include Hunza, Swat, Naran, Skardu, and Murree."
	}
	if containsField(missing, "budget") {
		if urdu {
			return "Aap ka budget kya hai? Isse behtar packages mil jayenge!"
		}
		return "What's your budget range? This helps me find the perfect package for you!"
	}
	if containsField(missing, "duration") {
		if urdu {
			return "Kitne din ke liye trip plan kar rahe hain?"
		}
		return "How many days are you planning to travel?"
	}
	if urdu {
		return "Thodi aur details bata sakte hain?"
	}
	return "Could you provide more details about your trip preferences?"
}

// RenderSummary picks the body template by result-count bucket: 0 none,
// 1–2 few, 3+ many.
func RenderSummary(language string, data TemplateData) string {
	urdu := language == "urdu"
	switch {
	case data.Count == 0:
		if urdu {
			return urduNone(data)
		}
		return englishNone(data)
	case data.Count <= 2:
		if urdu {
			return urduFew(data)
		}
		return englishFew(data)
	default:
		if urdu {
			return urduMany(data)
		}
		return englishMany(data)
	}
}

// FormatPackageLine renders the one-line summary appended per package.
func FormatPackageLine(pkg response_models.PackageRecommendation, language string) string {
	if language == "urdu" {
		return fmt.Sprintf("%s - PKR %s, %d din, Rating: %.1f/5",
			pkg.Title, FormatAmount(pkg.Price), pkg.Duration, pkg.Rating)
	}
	return fmt.Sprintf("%s - PKR %s, %d %s, Rating: %.1f/5",
		pkg.Title, FormatAmount(pkg.Price), pkg.Duration, dayWord(pkg.Duration), pkg.Rating)
}

// FormatAmount renders a rupee amount with thousands separators.
func FormatAmount(amount int) string {
	digits := fmt.Sprintf("%d", amount)
	if len(digits) <= 3 {
		return digits
	}
	var parts []string
	for len(digits) > 3 {
		parts = append([]string{digits[len(digits)-3:]}, parts...)
		digits = digits[:len(digits)-3]
	}
	return digits + "," + strings.Join(parts, ",")
}

func englishMany(data TemplateData) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Great! I found %d amazing packages", data.Count)
	if data.Destination != "" {
		fmt.Fprintf(&b, " to %s", data.Destination)
	}
	if data.Duration > 0 {
		fmt.Fprintf(&b, " for %d %s", data.Duration, dayWord(data.Duration))
	}
	if data.Budget > 0 {
		fmt.Fprintf(&b, " under PKR %s", FormatAmount(data.Budget))
	}
	b.WriteString("! ")
	if data.MinPrice > 0 && data.MaxPrice > 0 {
		fmt.Fprintf(&b, "Prices range from PKR %s to PKR %s. ",
			FormatAmount(data.MinPrice), FormatAmount(data.MaxPrice))
	}
	b.WriteString("Here are the top picks for you:")
	return b.String()
}

func englishFew(data TemplateData) string {
	var b strings.Builder
	if data.Count == 1 {
		b.WriteString("I found 1 package")
	} else {
		fmt.Fprintf(&b, "I found %d packages", data.Count)
	}
	if data.Destination != "" {
		fmt.Fprintf(&b, " to %s", data.Destination)
	}
	b.WriteString(". ")
	if data.Count == 1 {
		b.WriteString("Here it is:")
	} else {
		b.WriteString("Check them out:")
	}
	return b.String()
}

func englishNone(data TemplateData) string {
	var b strings.Builder
	b.WriteString("I couldn't find exact matches")

	var criteria []string
	if data.Destination != "" {
		criteria = append(criteria, data.Destination)
	}
	if data.Budget > 0 {
		criteria = append(criteria, "under PKR "+FormatAmount(data.Budget))
	}
	if data.Duration > 0 {
		criteria = append(criteria, fmt.Sprintf("%d days", data.Duration))
	}
	if len(criteria) > 0 {
		fmt.Fprintf(&b, " for %s", strings.Join(criteria, ", "))
	}

	b.WriteString(", but I have some great alternatives! Would you like to see:")
	b.WriteString("\n- Similar destinations")
	b.WriteString("\n- Flexible duration packages")
	b.WriteString("\n- Higher budget options")
	return b.String()
}

func urduMany(data TemplateData) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Bahut acha! %d packages mil gaye", data.Count)
	if data.Destination != "" {
		fmt.Fprintf(&b, " %s ke liye", data.Destination)
	}
	if data.Duration > 0 {
		fmt.Fprintf(&b, ", %d din ke liye", data.Duration)
	}
	if data.Budget > 0 {
		fmt.Fprintf(&b, ", PKR %s ke andar", FormatAmount(data.Budget))
	}
	b.WriteString("! Yeh dekhen:")
	return b.String()
}

func urduFew(data TemplateData) string {
	var b strings.Builder
	if data.Count > 1 {
		fmt.Fprintf(&b, "%d packages mil gaye", data.Count)
	} else {
		b.WriteString("1 package mil gaya")
	}
	if data.Destination != "" {
		fmt.Fprintf(&b, " %s ke liye", data.Destination)
	}
	b.WriteString(". Yeh dekhen:")
	return b.String()
}

func urduNone(data TemplateData) string {
	var b strings.Builder
	b.WriteString("Exact match nahi mila")
	if data.Destination != "" || data.Budget > 0 {
		b.WriteString(" lekin aur options hain! ")
	}
	b.WriteString("Kya aap:")
	b.WriteString("\n- Milte julte destinations dekhna chahenge?")
	b.WriteString("\n- Budget thoda increase kar sakte hain?")
	return b.String()
}

func dayWord(days int) string {
	if days == 1 {
		return "day"
	}
	return "days"
}

func containsField(fields []string, field string) bool {
	for _, f := range fields {
		if f == field {
			return true
		}
	}
	return false
}
