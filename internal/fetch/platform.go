package fetch

import (
	"net/url"
	"strings"
)

// Platform represents a known job board.
type Platform string

const (
	PlatformGreenhouse      Platform = "greenhouse"
	PlatformLever           Platform = "lever"
	PlatformWorkday         Platform = "workday"
	PlatformAshby           Platform = "ashby"
	PlatformSmartRecruiters Platform = "smartrecruiters"
	PlatformUnknown         Platform = "unknown"
)

// platformRule describes how to recognize a job board and where its posting text lives.
type platformRule struct {
	platform Platform
	hosts    []string
	content  []string
	noise    []string
	// rendersClientSide marks boards whose HTTP response rarely carries the posting.
	rendersClientSide bool
}

var platformRules = []platformRule{
	{
		platform: PlatformGreenhouse,
		hosts:    []string{"greenhouse.io"},
		content:  []string{".job__description.body", ".job__description", ".job-description__content", "#content", ".job-post-container"},
		noise:    []string{".application--wrapper", ".voluntary-self-id", "#usa_self_id_section", ".post-apply"},
	},
	{
		platform: PlatformLever,
		hosts:    []string{"lever.co"},
		content:  []string{".posting-page", ".section-wrapper.page-full-width", ".posting-description", ".content"},
		noise:    []string{".apply-section", ".lever-application-form", ".posting-apply"},
	},
	{
		platform:          PlatformWorkday,
		hosts:             []string{"myworkdayjobs.com", "workday.com"},
		content:           []string{"[data-automation-id='jobPostingDescription']", "[data-automation-id='jobDescription']", ".job-description"},
		noise:             []string{"[data-automation-id='applyButton']", ".application-section"},
		rendersClientSide: true,
	},
	{
		platform:          PlatformAshby,
		hosts:             []string{"ashbyhq.com"},
		content:           []string{"[class*='descriptionText']", "main"},
		noise:             []string{"[class*='applicationForm']"},
		rendersClientSide: true,
	},
	{
		platform: PlatformSmartRecruiters,
		hosts:    []string{"smartrecruiters.com"},
		content:  []string{".job-sections", "[itemprop='description']", "main"},
		noise:    []string{".job-apply", ".social-sharing"},
	},
}

// commonPostingNoise is removed from every job page regardless of platform.
var commonPostingNoise = []string{
	"form", "#application-form", ".application-form", ".apply-button-container",
	".voluntary-disclosure", ".eeo-statement", ".eeo-section", ".legal-disclosure",
	".social-share", ".share-buttons", ".cookie-consent", ".gdpr-notice",
}

func ruleFor(urlStr string) (platformRule, bool) {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return platformRule{}, false
	}
	host := strings.ToLower(parsed.Hostname())
	for _, rule := range platformRules {
		for _, h := range rule.hosts {
			if host == h || strings.HasSuffix(host, "."+h) {
				return rule, true
			}
		}
	}
	return platformRule{}, false
}

// DetectPlatform identifies the job board from a URL's host.
func DetectPlatform(urlStr string) Platform {
	if rule, ok := ruleFor(urlStr); ok {
		return rule.platform
	}
	return PlatformUnknown
}

// ContentSelectors returns where posting text lives on the board behind urlStr,
// followed by the generic job posting selectors.
func ContentSelectors(urlStr string) []string {
	rule, _ := ruleFor(urlStr)
	return append(append([]string{}, rule.content...), JobPostingSelectors()...)
}

// NoiseSelectors returns the elements stripped from a posting page before extraction.
func NoiseSelectors(urlStr string) []string {
	rule, _ := ruleFor(urlStr)
	return append(append([]string{}, commonPostingNoise...), rule.noise...)
}

// RendersClientSide reports whether the board is known to need a browser.
func RendersClientSide(urlStr string) bool {
	rule, _ := ruleFor(urlStr)
	return rule.rendersClientSide
}
