package fetch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectPlatform(t *testing.T) {
	tests := []struct {
		url      string
		expected Platform
	}{
		{"https://job-boards.greenhouse.io/doordashusa/jobs/7063751", PlatformGreenhouse},
		{"https://boards.greenhouse.io/company/jobs/123", PlatformGreenhouse},
		{"https://jobs.lever.co/company/job-id", PlatformLever},
		{"https://company.wd5.myworkdayjobs.com/en-US/External", PlatformWorkday},
		{"https://jobs.ashbyhq.com/acme/123", PlatformAshby},
		{"https://jobs.smartrecruiters.com/Acme/123", PlatformSmartRecruiters},
		{"https://example.com/careers/backend", PlatformUnknown},
		{"https://notgreenhouse.io.evil.com/job", PlatformUnknown},
		{"https://clever.co/jobs", PlatformUnknown},
		{"://bad", PlatformUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectPlatform(tt.url))
		})
	}
}

func TestContentSelectors(t *testing.T) {
	greenhouse := ContentSelectors("https://boards.greenhouse.io/acme/jobs/1")
	assert.Equal(t, ".job__description.body", greenhouse[0])
	assert.Contains(t, greenhouse, ".job-description", "generic selectors follow")

	assert.Equal(t, JobPostingSelectors(), ContentSelectors("https://example.com/job"))
}

func TestNoiseSelectors(t *testing.T) {
	lever := NoiseSelectors("https://jobs.lever.co/acme/1")
	assert.Contains(t, lever, "form")
	assert.Contains(t, lever, ".posting-apply")

	unknown := NoiseSelectors("https://example.com/job")
	assert.Equal(t, commonPostingNoise, unknown)
}

func TestRendersClientSide(t *testing.T) {
	assert.True(t, RendersClientSide("https://acme.wd1.myworkdayjobs.com/job/1"))
	assert.True(t, RendersClientSide("https://jobs.ashbyhq.com/acme/1"))
	assert.False(t, RendersClientSide("https://boards.greenhouse.io/acme/jobs/1"))
	assert.False(t, RendersClientSide("https://example.com/job"))
}
