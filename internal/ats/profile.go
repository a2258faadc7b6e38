package ats

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-ats/internal/types"
)

var (
	emailDomain = regexp.MustCompile(`@([A-Za-z0-9.-]+)$`)
	nonDigit    = regexp.MustCompile(`\D`)
)

const (
	minEmailLength = 6
	minPhoneDigits = 10

	strongCGPA = 8.5
	weakCGPA   = 6.0
)

// experienceKeywords are matched as substrings of the lowercased internship text.
var experienceKeywords = []string{
	"experience", "internship", "project", "work", "employment",
	"position", "role", "responsibility", "achievement", "accomplishment",
	"developed", "created", "implemented", "managed", "led", "coordinated",
	"designed", "built", "improved", "optimized", "delivered",
}

func evaluateContact(in *input) Evaluation {
	ev := Evaluation{Category: types.CategoryContactInfo}
	r := in.resume

	if email := r.Email; email != "" {
		ev.Score += 5
		if !emailDomain.MatchString(email) || len(email) < minEmailLength || strings.Contains(email, "..") {
			ev.tip("Verify your email format")
			ev.issue(types.IssueFormattingErrors, issueCategoryContact, "Suspicious email format", types.SeverityMinor,
				"Ensure your email is correctly formatted and professional",
				"Use a professional email (e.g., firstname.lastname@domain.com)")
		}
	} else {
		ev.tip("Add a professional email address")
		ev.issue(types.IssueMissingSection, issueCategoryContact, "Missing email address", types.SeverityCritical,
			"Email address is required for ATS systems to contact you",
			"Add a professional email address in the contact section")
	}

	if phone := r.Phone; phone != "" {
		ev.Score += 5
		if len(nonDigit.ReplaceAllString(phone, "")) < minPhoneDigits {
			ev.tip("Provide a valid phone number with country/area code")
			ev.issue(types.IssueFormattingErrors, issueCategoryContact, "Phone number appears too short", types.SeverityMinor,
				"Short phone numbers may prevent recruiters from contacting you",
				"Include full phone number with country/area code")
		}
	} else {
		ev.tip("Include your phone number")
		ev.issue(types.IssueMissingSection, issueCategoryContact, "Missing phone number", types.SeverityMajor,
			"Phone number helps recruiters contact you directly",
			"Include your phone number in the contact section")
	}

	if r.Name != "" {
		ev.Score += 5
	} else {
		ev.tip("Ensure your full name is clearly visible")
		ev.issue(types.IssueMissingSection, issueCategoryContact, "Missing full name", types.SeverityCritical,
			"Full name is essential for resume identification",
			"Add your full name prominently at the top of the resume")
	}
	return ev
}

func evaluateEducation(in *input) Evaluation {
	ev := Evaluation{Category: types.CategoryEducation}
	r := in.resume

	if r.HasDegree() {
		ev.Score += 5
	} else {
		ev.tip("Include your degree information")
		ev.issue(types.IssueMissingSection, issueCategoryEducation, "Missing degree information", types.SeverityCritical,
			"Degree information is essential for ATS systems to understand your qualifications",
			"Add your degree (e.g., B.Tech, B.Sc, M.Tech) in the education section")
	}

	if r.HasUniversity() {
		ev.Score += 5
	} else {
		ev.tip("Add your university/college name")
		ev.issue(types.IssueMissingSection, issueCategoryEducation, "Missing university/college name", types.SeverityMajor,
			"University name helps establish credibility and educational background",
			"Include your university or college name in the education section")
	}

	cgpa := r.EffectiveCGPA()
	if cgpa > 0 {
		ev.Score += 5
	} else {
		ev.tip("Include your CGPA/GPA if available")
		ev.issue(types.IssueMissingSection, issueCategoryEducation, "Missing CGPA/GPA", types.SeverityMinor,
			"Academic performance metrics help differentiate candidates",
			"Include your CGPA or GPA if it is 7.0 or above")
	}

	switch {
	case cgpa >= strongCGPA:
		ev.Score += 2
		ev.tip("Strong academics (CGPA ≥ 8.5)")
	case cgpa > 0 && cgpa < weakCGPA:
		ev.Score -= 3
		ev.tip("Low academic performance; consider improving CGPA")
	}
	return ev
}

func evaluateExperience(in *input) Evaluation {
	ev := Evaluation{Category: types.CategoryExperience}
	internships := in.resume.Internships

	switch {
	case len(internships) > 1:
		ev.Score += 15
		ev.tip("Great! Multiple internships show diverse experience")
	case len(internships) == 1:
		ev.Score += 10
		ev.tip("Good internship experience")
	default:
		ev.tip("Consider adding internship experience")
		ev.issue(types.IssueMissingSection, issueCategoryExperience, "No internship or work experience", types.SeverityMajor,
			"Work experience is crucial for most job applications",
			"Add internships, part-time jobs, or relevant projects to show practical experience")
	}

	text := strings.ToLower(strings.Join(internships, " "))
	hits := 0
	for _, kw := range experienceKeywords {
		if strings.Contains(text, kw) {
			hits++
		}
	}

	switch {
	case hits >= 3:
		ev.Score += 5
		ev.tip("Good use of action verbs and experience keywords")
	case hits > 0:
		ev.Score += 2
		ev.tip("Add more action verbs like 'developed', 'implemented', 'managed'")
		ev.issue(types.IssueWeakKeywords, issueCategoryExperience, "Limited action verbs in experience descriptions", types.SeverityMinor,
			"Action verbs make your experience more impactful and ATS-friendly",
			"Use strong action verbs like developed, implemented, managed, led, created, designed")
	default:
		ev.tip("Use action verbs to describe your experience")
		ev.issue(types.IssueWeakKeywords, issueCategoryExperience, "Missing action verbs in experience descriptions", types.SeverityMajor,
			"Action verbs are essential for ATS systems to understand your contributions",
			"Start each experience bullet point with a strong action verb")
	}
	return ev
}

func evaluateAchievements(in *input) Evaluation {
	ev := Evaluation{Category: types.CategoryAchievements}
	if len(in.resume.Achievements) > 0 {
		ev.Score = 5
		ev.tip("Great achievements section")
		return ev
	}
	ev.tip("Consider adding achievements, awards, or certifications")
	ev.issue(types.IssueMissingSection, issueCategoryAchievements, "Missing achievements section", types.SeverityMinor,
		"Achievements help differentiate you from other candidates",
		"Add awards, certifications, hackathon wins, or academic honors")
	return ev
}

const (
	minSectionsPresent = 4
	paddedSkillCount   = 20
)

func evaluateFormat(in *input) Evaluation {
	ev := Evaluation{Category: types.CategoryFormat, Score: 5}
	r := in.resume

	present := 0
	for _, ok := range []bool{r.Name != "", r.Email != "", r.Degree != "", len(r.Skills) > 0, len(r.Projects) > 0} {
		if ok {
			present++
		}
	}
	if present >= minSectionsPresent {
		ev.tip("Well-structured resume with all major sections")
	} else {
		ev.tip("Ensure all major sections are present and well-organized")
		ev.issue(types.IssueFormattingErrors, issueCategoryFormat, "Incomplete resume structure", types.SeverityMajor,
			"ATS systems expect standard resume sections for proper parsing",
			"Ensure all major sections (Contact, Education, Skills, Experience, Projects) are present")
	}

	if len(r.Skills) >= paddedSkillCount && len(r.Projects) <= 1 {
		ev.Score -= 2
		ev.tip("Skills list is very long; ensure depth with projects/experience")
	}
	return ev
}
