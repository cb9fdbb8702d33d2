package schemas

import (
	"errors"
	"time"
	"unicode"

	"github.com/goliatone/go-schemaform/pkg/schema"
)

// Registration exercises conditional business fields, a cross-field password
// confirmation, and a must-accept terms checkbox.
func Registration() *schema.FormSchema {
	return &schema.FormSchema{
		ID: "user-registration",
		Meta: schema.Meta{
			Title:    "Create Account",
			Subtitle: "Join our community today",
		},
		Fields: schema.FieldList{
			{
				ID:          "firstName",
				Label:       "First Name",
				Renderer:    schema.RendererText,
				Placeholder: "John",
				Rules:       &schema.RuleSet{Required: "First name is required"},
			},
			{
				ID:          "lastName",
				Label:       "Last Name",
				Renderer:    schema.RendererText,
				Placeholder: "Doe",
				Rules:       &schema.RuleSet{Required: "Last name is required"},
			},
			{
				ID:       "dateOfBirth",
				Label:    "Date of Birth",
				Renderer: schema.RendererDate,
				Props: schema.Props{
					MaxDate:     schema.Date(time.Now()),
					Placeholder: "Pick a date",
				},
				Rules: &schema.RuleSet{Required: "Date of birth is required"},
			},
			{
				ID:          "email",
				Label:       "Email",
				Renderer:    schema.RendererText,
				InputType:   "email",
				Placeholder: "you@example.com",
				Rules: &schema.RuleSet{
					Required: "Email is required",
					Pattern:  schema.Pattern(emailPattern, "Invalid email"),
				},
			},
			{
				ID:        "password",
				Label:     "Password",
				Renderer:  schema.RendererText,
				InputType: "password",
				Rules: &schema.RuleSet{
					Required:  "Password is required",
					MinLength: schema.MinLen(8, "Password must be at least 8 characters"),
					Validate:  passwordStrength,
				},
			},
			{
				ID:        "confirmPassword",
				Label:     "Confirm Password",
				Renderer:  schema.RendererText,
				InputType: "password",
				Rules: &schema.RuleSet{
					Required: "Please confirm your password",
					Validate: func(value any, values schema.Values) error {
						if value != values["password"] {
							return errors.New("Passwords don't match")
						}
						return nil
					},
				},
			},
			{
				ID:       "accountType",
				Label:    "Account Type",
				Renderer: schema.RendererRadio,
				Default:  "personal",
				Props: schema.Props{
					Options: []schema.Option{
						schema.Opt("Personal", "personal"),
						schema.Opt("Business", "business"),
					},
				},
				Rules: &schema.RuleSet{Required: "Please select an account type"},
			},
			{
				ID:          "companyName",
				Label:       "Company Name",
				Renderer:    schema.RendererText,
				Placeholder: "Acme Inc.",
				VisibleWhen: schema.Conditions{schema.WhenEquals("accountType", "business")},
				Rules:       &schema.RuleSet{Required: "Company name is required for business accounts"},
			},
			{
				ID:          "taxId",
				Label:       "Tax ID / EIN",
				Renderer:    schema.RendererText,
				Placeholder: "XX-XXXXXXX",
				VisibleWhen: schema.Conditions{schema.WhenEquals("accountType", "business")},
				Rules: &schema.RuleSet{
					Pattern: schema.Pattern(`^\d{2}-\d{7}$`, "Invalid Tax ID format (XX-XXXXXXX)"),
				},
			},
			{
				ID:       "agreeToTerms",
				Label:    "I agree to the Terms of Service and Privacy Policy",
				Renderer: schema.RendererCheckbox,
				Rules:    &schema.RuleSet{Required: "You must agree to the terms"},
			},
		},
		Layout: []schema.LayoutNode{
			schema.Section("Personal Information", true,
				schema.Grid(2, schema.SpacingMD,
					schema.FieldRef("firstName"),
					schema.FieldRef("lastName"),
					schema.FieldSpan("dateOfBirth", 2),
				),
			),
			schema.Section("Account Details", true,
				schema.Stack(schema.SpacingMD,
					schema.FieldRef("email"),
					schema.Grid(2, schema.SpacingMD,
						schema.FieldRef("password"),
						schema.FieldRef("confirmPassword"),
					),
				),
			),
			schema.Section("Account Type", true,
				schema.Stack(schema.SpacingMD,
					schema.FieldRef("accountType"),
					schema.FieldRef("companyName"),
					schema.FieldRef("taxId"),
				),
			),
			schema.Stack(schema.SpacingMD, schema.FieldRef("agreeToTerms")),
		},
	}
}

// passwordStrength enforces the character-class mix. Expressed as code
// because the pattern engine has no lookahead.
func passwordStrength(value any, _ schema.Values) error {
	s, _ := value.(string)
	var upper, lower, digit bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	if !upper || !lower || !digit {
		return errors.New("Password must contain uppercase, lowercase, and number")
	}
	return nil
}
