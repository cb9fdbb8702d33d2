package schemas

import "github.com/goliatone/go-schemaform/pkg/schema"

// Contact is a simple flat form: one stack, no conditional fields.
func Contact() *schema.FormSchema {
	return &schema.FormSchema{
		ID: "contact-form",
		Meta: schema.Meta{
			Title:    "Contact Us",
			Subtitle: "We'd love to hear from you",
		},
		Fields: schema.FieldList{
			{
				ID:          "name",
				Label:       "Full Name",
				Renderer:    schema.RendererText,
				Placeholder: "Enter your full name",
				Rules: &schema.RuleSet{
					Required:  "Name is required",
					MinLength: schema.MinLen(2, "Name must be at least 2 characters"),
				},
			},
			{
				ID:          "email",
				Label:       "Email Address",
				Renderer:    schema.RendererText,
				InputType:   "email",
				Placeholder: "you@example.com",
				Rules: &schema.RuleSet{
					Required: "Email is required",
					Pattern:  schema.Pattern(emailPattern, "Invalid email address"),
				},
			},
			{
				ID:          "subject",
				Label:       "Subject",
				Renderer:    schema.RendererSelect,
				Placeholder: "Select a subject",
				Props: schema.Props{
					Data: []schema.Option{
						schema.Opt("General Inquiry", "general"),
						schema.Opt("Technical Support", "support"),
						schema.Opt("Sales", "sales"),
						schema.Opt("Partnership", "partnership"),
					},
				},
				Rules: &schema.RuleSet{Required: "Please select a subject"},
			},
			{
				ID:          "message",
				Label:       "Message",
				Renderer:    schema.RendererTextArea,
				Placeholder: "Tell us what's on your mind...",
				Props:       schema.Props{MinRows: 4, MaxRows: 8},
				Rules: &schema.RuleSet{
					Required:  "Message is required",
					MinLength: schema.MinLen(10, "Message must be at least 10 characters"),
					MaxLength: schema.MaxLen(500, "Message cannot exceed 500 characters"),
				},
			},
			{
				ID:       "newsletter",
				Label:    "Subscribe to newsletter",
				Renderer: schema.RendererCheckbox,
				Default:  false,
			},
		},
		Layout: []schema.LayoutNode{
			schema.Stack(schema.SpacingMD,
				schema.FieldRef("name"),
				schema.FieldRef("email"),
				schema.FieldRef("subject"),
				schema.FieldRef("message"),
				schema.FieldRef("newsletter"),
			),
		},
	}
}
