package schemas

import (
	"errors"

	"github.com/goliatone/go-schemaform/pkg/schema"
)

// JobApplication is the widest catalog form: every renderer kind appears,
// employment fields reveal on a radio answer, and the skills multiselect
// carries a minimum-count rule.
func JobApplication() *schema.FormSchema {
	return &schema.FormSchema{
		ID: "job-application",
		Meta: schema.Meta{
			Title:    "Job Application",
			Subtitle: "Software Engineer Position",
		},
		Fields: schema.FieldList{
			{
				ID:       "firstName",
				Label:    "First Name",
				Renderer: schema.RendererText,
				Rules:    &schema.RuleSet{Required: "Required"},
			},
			{
				ID:       "lastName",
				Label:    "Last Name",
				Renderer: schema.RendererText,
				Rules:    &schema.RuleSet{Required: "Required"},
			},
			{
				ID:        "email",
				Label:     "Email",
				Renderer:  schema.RendererText,
				InputType: "email",
				Rules: &schema.RuleSet{
					Required: "Required",
					Pattern:  schema.Pattern(emailPattern, "Invalid email"),
				},
			},
			{
				ID:        "phone",
				Label:     "Phone",
				Renderer:  schema.RendererText,
				InputType: "tel",
				Rules:     &schema.RuleSet{Required: "Required"},
			},
			{
				ID:       "experienceLevel",
				Label:    "Experience Level",
				Renderer: schema.RendererSelect,
				Props: schema.Props{
					Data: []schema.Option{
						schema.Opt("Entry Level (0-2 years)", "entry"),
						schema.Opt("Mid Level (3-5 years)", "mid"),
						schema.Opt("Senior (6-10 years)", "senior"),
						schema.Opt("Lead (10+ years)", "lead"),
					},
				},
				Rules: &schema.RuleSet{Required: "Required"},
			},
			{
				ID:       "yearsOfExperience",
				Label:    "Years of Experience",
				Renderer: schema.RendererNumber,
				Props:    schema.Props{Min: schema.Number(0), Max: schema.Number(50)},
				Rules: &schema.RuleSet{
					Required: "Required",
					Min:      schema.Min(0, "Cannot be negative"),
				},
			},
			{
				ID:       "currentlyEmployed",
				Label:    "Currently Employed",
				Renderer: schema.RendererRadio,
				Props: schema.Props{
					Options: []schema.Option{
						schema.Opt("Yes", "yes"),
						schema.Opt("No", "no"),
					},
				},
				Rules: &schema.RuleSet{Required: "Required"},
			},
			{
				ID:          "currentCompany",
				Label:       "Current Company",
				Renderer:    schema.RendererText,
				VisibleWhen: schema.Conditions{schema.WhenEquals("currentlyEmployed", "yes")},
				Rules:       &schema.RuleSet{Required: "Required"},
			},
			{
				ID:          "currentPosition",
				Label:       "Current Position",
				Renderer:    schema.RendererText,
				VisibleWhen: schema.Conditions{schema.WhenEquals("currentlyEmployed", "yes")},
			},
			{
				ID:          "noticePeriod",
				Label:       "Notice Period",
				Renderer:    schema.RendererSelect,
				VisibleWhen: schema.Conditions{schema.WhenEquals("currentlyEmployed", "yes")},
				Props: schema.Props{
					Data: []schema.Option{
						schema.Opt("Immediate", "immediate"),
						schema.Opt("2 weeks", "2weeks"),
						schema.Opt("1 month", "1month"),
						schema.Opt("2 months", "2months"),
						schema.Opt("3 months", "3months"),
					},
				},
			},
			{
				ID:       "primarySkills",
				Label:    "Primary Skills",
				Renderer: schema.RendererMultiSelect,
				Props: schema.Props{
					Data: schema.Opts(
						"JavaScript", "TypeScript", "React", "Node.js",
						"Python", "Java", "Go", "Rust", "C++",
						"SQL", "MongoDB", "PostgreSQL", "Redis",
						"AWS", "Azure", "Docker", "Kubernetes",
					),
					Searchable: true,
					MaxValues:  8,
				},
				Rules: &schema.RuleSet{
					Required: "Select at least 3 skills",
					Validate: minSelections(3, "Select at least 3 skills"),
				},
			},
			{
				ID:       "resume",
				Label:    "Resume/CV",
				Renderer: schema.RendererFile,
				Props: schema.Props{
					Accept:  ".pdf,.doc,.docx",
					MaxSize: 5 * 1024 * 1024,
				},
				Rules: &schema.RuleSet{Required: "Resume is required"},
			},
			{
				ID:          "coverLetter",
				Label:       "Cover Letter",
				Renderer:    schema.RendererTextArea,
				Placeholder: "Tell us why you're a great fit...",
				Props:       schema.Props{MinRows: 6},
				Rules: &schema.RuleSet{
					Required:  "Cover letter is required",
					MinLength: schema.MinLen(100, "At least 100 characters"),
				},
			},
			{
				ID:          "portfolio",
				Label:       "Portfolio URL",
				Renderer:    schema.RendererText,
				InputType:   "url",
				Placeholder: "https://yourportfolio.com",
				Rules: &schema.RuleSet{
					Pattern: schema.Pattern(`^https?://.+`, "Must be a valid URL"),
				},
			},
			{
				ID:          "linkedIn",
				Label:       "LinkedIn Profile",
				Renderer:    schema.RendererText,
				InputType:   "url",
				Placeholder: "https://linkedin.com/in/yourprofile",
			},
			{
				ID:          "github",
				Label:       "GitHub Profile",
				Renderer:    schema.RendererText,
				InputType:   "url",
				Placeholder: "https://github.com/yourusername",
			},
			{
				ID:       "expectedSalary",
				Label:    "Expected Salary (Annual, KES)",
				Renderer: schema.RendererNumber,
				Props: schema.Props{
					Min:                schema.Number(0),
					Step:               schema.Number(100000),
					ThousandsSeparator: ",",
				},
			},
			{
				ID:       "willingToRelocate",
				Label:    "Willing to Relocate",
				Renderer: schema.RendererSwitch,
				Default:  false,
			},
			{
				ID:       "remoteWork",
				Label:    "Remote Work Preference",
				Renderer: schema.RendererSelect,
				Props: schema.Props{
					Data: []schema.Option{
						schema.Opt("Fully Remote", "remote"),
						schema.Opt("Hybrid", "hybrid"),
						schema.Opt("On-site", "onsite"),
						schema.Opt("Flexible", "flexible"),
					},
				},
			},
			{
				ID:       "legallyAuthorized",
				Label:    "I am legally authorized to work in Kenya",
				Renderer: schema.RendererCheckbox,
				Rules:    &schema.RuleSet{Required: "You must confirm authorization to work"},
			},
			{
				ID:       "agreeToTerms",
				Label:    "I agree to the terms and conditions",
				Renderer: schema.RendererCheckbox,
				Rules:    &schema.RuleSet{Required: "You must agree to terms"},
			},
		},
		Layout: []schema.LayoutNode{
			schema.Section("Personal Information", true,
				schema.Grid(2, schema.SpacingMD,
					schema.FieldRef("firstName"),
					schema.FieldRef("lastName"),
					schema.FieldRef("email"),
					schema.FieldRef("phone"),
				),
			),
			schema.Section("Professional Experience", true,
				schema.Grid(2, schema.SpacingMD,
					schema.FieldRef("experienceLevel"),
					schema.FieldRef("yearsOfExperience"),
					schema.FieldSpan("currentlyEmployed", 2),
				),
				schema.Grid(2, schema.SpacingMD,
					schema.FieldRef("currentCompany"),
					schema.FieldRef("currentPosition"),
					schema.FieldSpan("noticePeriod", 2),
				),
			),
			schema.Section("Skills & Qualifications", true,
				schema.Stack(schema.SpacingMD, schema.FieldRef("primarySkills")),
			),
			schema.Section("Application Materials", true,
				schema.Stack(schema.SpacingMD,
					schema.FieldRef("resume"),
					schema.FieldRef("coverLetter"),
					schema.Grid(3, schema.SpacingMD,
						schema.FieldRef("portfolio"),
						schema.FieldRef("linkedIn"),
						schema.FieldRef("github"),
					),
				),
			),
			schema.Section("Work Preferences", true,
				schema.Grid(3, schema.SpacingMD,
					schema.FieldRef("expectedSalary"),
					schema.FieldRef("remoteWork"),
					schema.FieldRef("willingToRelocate"),
				),
			),
			schema.Section("Legal & Confirmation", false,
				schema.Stack(schema.SpacingSM,
					schema.FieldRef("legallyAuthorized"),
					schema.FieldRef("agreeToTerms"),
				),
			),
		},
	}
}

// minSelections rejects multiselect values with fewer than n entries.
func minSelections(n int, msg string) schema.ValidateFunc {
	return func(value any, _ schema.Values) error {
		var count int
		switch v := value.(type) {
		case []any:
			count = len(v)
		case []string:
			count = len(v)
		}
		if count < n {
			return errors.New(msg)
		}
		return nil
	}
}
