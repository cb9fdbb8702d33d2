package schemas

import "github.com/goliatone/go-schemaform/pkg/schema"

// AgentUpdate is a field-agent profile form where the identity documents
// demanded depend on whether the agent is an individual or a business.
func AgentUpdate() *schema.FormSchema {
	return &schema.FormSchema{
		ID: "agent-update",
		Meta: schema.Meta{
			Title:    "Update Agent",
			Subtitle: "Core attributes",
		},
		Fields: schema.FieldList{
			{
				ID:          "agent_name",
				Label:       "Agent Name",
				Renderer:    schema.RendererText,
				Placeholder: "Enter agent name",
				Rules: &schema.RuleSet{
					Required:  "Agent name is required",
					MinLength: schema.MinLen(3, "Name must be at least 3 characters"),
				},
			},
			{
				ID:          "agent_type",
				Label:       "Agent Type",
				Renderer:    schema.RendererSelect,
				Placeholder: "Select type",
				Props: schema.Props{
					Data: []schema.Option{
						schema.Opt("Individual", "Individual"),
						schema.Opt("Business", "Business"),
					},
				},
				Rules: &schema.RuleSet{Required: "Agent type is required"},
			},
			{
				ID:          "id_number",
				Label:       "ID Number",
				Renderer:    schema.RendererText,
				Placeholder: "Enter ID number",
				VisibleWhen: schema.Conditions{schema.WhenEquals("agent_type", "Individual")},
				Rules: &schema.RuleSet{
					Required: "ID number is required for individuals",
					Pattern:  schema.Pattern(`^\d{7,8}$`, "Invalid ID number format"),
				},
			},
			{
				ID:          "kra_pin",
				Label:       "KRA PIN",
				Renderer:    schema.RendererText,
				Placeholder: "AXXXXXXXXXX",
				VisibleWhen: schema.Conditions{schema.WhenEquals("agent_type", "Business")},
				Rules: &schema.RuleSet{
					Required: "KRA PIN is required for businesses",
					Pattern:  schema.Pattern(`^[A-Z0-9]{11}$`, "Invalid KRA PIN format"),
				},
			},
			{
				ID:          "phone_number",
				Label:       "Phone Number",
				Renderer:    schema.RendererText,
				InputType:   "tel",
				Placeholder: "254712345678",
				Rules: &schema.RuleSet{
					Required: "Phone number is required",
					Pattern:  schema.Pattern(`^254[17]\d{8}$`, "Invalid phone number (254XXXXXXXXX)"),
				},
			},
			{
				ID:          "email",
				Label:       "Email Address",
				Renderer:    schema.RendererText,
				InputType:   "email",
				Placeholder: "agent@example.com",
				Rules: &schema.RuleSet{
					Pattern: schema.Pattern(emailPattern, "Invalid email address"),
				},
			},
			{
				ID:          "location",
				Label:       "Location",
				Renderer:    schema.RendererText,
				Placeholder: "Enter location",
			},
			{
				ID:          "remarks",
				Label:       "Remarks",
				Renderer:    schema.RendererTextArea,
				Placeholder: "Additional notes...",
				Props:       schema.Props{MinRows: 3, MaxRows: 6},
			},
		},
		Layout: []schema.LayoutNode{
			schema.Section("Profile Information", true,
				schema.Grid(3, schema.SpacingMD,
					schema.FieldRef("agent_name"),
					schema.FieldRef("agent_type"),
					schema.FieldRef("id_number"),
					schema.FieldRef("kra_pin"),
				),
			),
			schema.Section("Contact Information", true,
				schema.Grid(2, schema.SpacingMD,
					schema.FieldRef("phone_number"),
					schema.FieldRef("email"),
					schema.FieldSpan("location", 2),
				),
			),
			schema.Stack(schema.SpacingMD, schema.FieldRef("remarks")),
		},
	}
}
