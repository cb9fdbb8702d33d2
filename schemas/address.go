package schemas

import "github.com/goliatone/go-schemaform/pkg/schema"

// Address shows country-dependent region fields: county for Kenya, state for
// the US, postcode for the UK, and a shared ZIP field for US and Canada.
func Address() *schema.FormSchema {
	return &schema.FormSchema{
		ID: "address-form",
		Meta: schema.Meta{
			Title:    "Shipping Address",
			Subtitle: "Where should we send your order?",
		},
		Fields: schema.FieldList{
			{
				ID:       "fullName",
				Label:    "Full Name",
				Renderer: schema.RendererText,
				Rules:    &schema.RuleSet{Required: "Full name is required"},
			},
			{
				ID:       "country",
				Label:    "Country",
				Renderer: schema.RendererSelect,
				Props: schema.Props{
					Data: []schema.Option{
						schema.Opt("Kenya", "KE"),
						schema.Opt("United States", "US"),
						schema.Opt("United Kingdom", "UK"),
						schema.Opt("Canada", "CA"),
					},
					Searchable: true,
				},
				Rules: &schema.RuleSet{Required: "Country is required"},
			},
			{
				ID:          "county",
				Label:       "County",
				Renderer:    schema.RendererSelect,
				VisibleWhen: schema.Conditions{schema.WhenEquals("country", "KE")},
				Props: schema.Props{
					Data:       schema.Opts("Nairobi", "Mombasa", "Kisumu", "Nakuru", "Eldoret"),
					Searchable: true,
				},
				Rules: &schema.RuleSet{Required: "County is required"},
			},
			{
				ID:          "state",
				Label:       "State",
				Renderer:    schema.RendererSelect,
				VisibleWhen: schema.Conditions{schema.WhenEquals("country", "US")},
				Props: schema.Props{
					Data:       schema.Opts("California", "Texas", "New York", "Florida", "Illinois"),
					Searchable: true,
				},
				Rules: &schema.RuleSet{Required: "State is required"},
			},
			{
				ID:          "postcode",
				Label:       "Postcode",
				Renderer:    schema.RendererText,
				VisibleWhen: schema.Conditions{schema.WhenEquals("country", "UK")},
				Rules: &schema.RuleSet{
					Required: "Postcode is required",
					Pattern:  schema.Pattern(`(?i)^[A-Z]{1,2}\d[A-Z\d]?\s?\d[A-Z]{2}$`, "Invalid UK postcode"),
				},
			},
			{
				ID:          "addressLine1",
				Label:       "Address Line 1",
				Renderer:    schema.RendererText,
				Placeholder: "Street address",
				Rules:       &schema.RuleSet{Required: "Address is required"},
			},
			{
				ID:          "addressLine2",
				Label:       "Address Line 2",
				Renderer:    schema.RendererText,
				Placeholder: "Apartment, suite, etc. (optional)",
			},
			{
				ID:       "city",
				Label:    "City",
				Renderer: schema.RendererText,
				Rules:    &schema.RuleSet{Required: "City is required"},
			},
			{
				ID:          "zipCode",
				Label:       "ZIP / Postal Code",
				Renderer:    schema.RendererText,
				VisibleWhen: schema.Conditions{schema.WhenIn("country", "US", "CA")},
				Rules:       &schema.RuleSet{Required: "ZIP code is required"},
			},
			{
				ID:        "phone",
				Label:     "Phone Number",
				Renderer:  schema.RendererText,
				InputType: "tel",
				Rules:     &schema.RuleSet{Required: "Phone number is required"},
			},
			{
				ID:          "deliveryInstructions",
				Label:       "Delivery Instructions",
				Renderer:    schema.RendererTextArea,
				Placeholder: "Any special delivery instructions?",
				Props:       schema.Props{MinRows: 2},
			},
			{
				ID:       "setAsDefault",
				Label:    "Set as default shipping address",
				Renderer: schema.RendererCheckbox,
				Default:  false,
			},
		},
		Layout: []schema.LayoutNode{
			schema.Stack(schema.SpacingLG,
				schema.FieldRef("fullName"),
				schema.Grid(2, schema.SpacingMD,
					schema.FieldRef("country"),
					schema.FieldRef("county"),
					schema.FieldRef("state"),
					schema.FieldRef("postcode"),
				),
				schema.FieldRef("addressLine1"),
				schema.FieldRef("addressLine2"),
				schema.Grid(2, schema.SpacingMD,
					schema.FieldRef("city"),
					schema.FieldRef("zipCode"),
				),
				schema.FieldRef("phone"),
				schema.FieldRef("deliveryInstructions"),
				schema.FieldRef("setAsDefault"),
			),
		},
	}
}
