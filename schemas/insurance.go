package schemas

import "github.com/goliatone/go-schemaform/pkg/schema"

// InsuranceQuote is the deepest conditional form: the insurance type selects
// one of four field groups, and two fields depend on a pair of conditions
// that must both hold.
func InsuranceQuote() *schema.FormSchema {
	return &schema.FormSchema{
		ID: "insurance-quote",
		Meta: schema.Meta{
			Title:    "Get Insurance Quote",
			Subtitle: "Fill in your details for a personalized quote",
		},
		Fields: schema.FieldList{
			{
				ID:       "insuranceType",
				Label:    "Insurance Type",
				Renderer: schema.RendererSelect,
				Props: schema.Props{
					Data: []schema.Option{
						schema.Opt("Auto Insurance", "auto"),
						schema.Opt("Home Insurance", "home"),
						schema.Opt("Life Insurance", "life"),
						schema.Opt("Health Insurance", "health"),
					},
				},
				Rules: &schema.RuleSet{Required: "Required"},
			},
			{
				ID:          "vehicleType",
				Label:       "Vehicle Type",
				Renderer:    schema.RendererSelect,
				VisibleWhen: schema.Conditions{schema.WhenEquals("insuranceType", "auto")},
				Props:       schema.Props{Data: schema.Opts("Car", "Motorcycle", "Truck", "SUV")},
				Rules:       &schema.RuleSet{Required: "Required"},
			},
			{
				ID:          "vehicleAge",
				Label:       "Vehicle Age (years)",
				Renderer:    schema.RendererNumber,
				VisibleWhen: schema.Conditions{schema.WhenEquals("insuranceType", "auto")},
				Props:       schema.Props{Min: schema.Number(0), Max: schema.Number(50)},
			},
			{
				ID:          "hasAccidents",
				Label:       "Any accidents in last 3 years?",
				Renderer:    schema.RendererRadio,
				VisibleWhen: schema.Conditions{schema.WhenEquals("insuranceType", "auto")},
				Props: schema.Props{
					Options: []schema.Option{
						schema.Opt("Yes", "yes"),
						schema.Opt("No", "no"),
					},
				},
			},
			{
				ID:       "accidentCount",
				Label:    "Number of Accidents",
				Renderer: schema.RendererNumber,
				VisibleWhen: schema.Conditions{
					schema.WhenEquals("insuranceType", "auto"),
					schema.WhenEquals("hasAccidents", "yes"),
				},
				Props: schema.Props{Min: schema.Number(1), Max: schema.Number(10)},
				Rules: &schema.RuleSet{Required: "Required"},
			},
			{
				ID:          "propertyType",
				Label:       "Property Type",
				Renderer:    schema.RendererSelect,
				VisibleWhen: schema.Conditions{schema.WhenEquals("insuranceType", "home")},
				Props:       schema.Props{Data: schema.Opts("House", "Apartment", "Condo", "Townhouse")},
				Rules:       &schema.RuleSet{Required: "Required"},
			},
			{
				ID:          "propertyValue",
				Label:       "Property Value (KES)",
				Renderer:    schema.RendererNumber,
				VisibleWhen: schema.Conditions{schema.WhenEquals("insuranceType", "home")},
				Props: schema.Props{
					Min:                schema.Number(0),
					Step:               schema.Number(100000),
					ThousandsSeparator: ",",
				},
				Rules: &schema.RuleSet{Required: "Required"},
			},
			{
				ID:          "hasSecuritySystem",
				Label:       "Has Security System",
				Renderer:    schema.RendererSwitch,
				VisibleWhen: schema.Conditions{schema.WhenEquals("insuranceType", "home")},
				Default:     false,
			},
			{
				ID:          "age",
				Label:       "Age",
				Renderer:    schema.RendererNumber,
				VisibleWhen: schema.Conditions{schema.WhenEquals("insuranceType", "life")},
				Props:       schema.Props{Min: schema.Number(18), Max: schema.Number(80)},
				Rules: &schema.RuleSet{
					Required: "Required",
					Min:      schema.Min(18, "Must be 18 or older"),
					Max:      schema.Max(80, "Maximum age is 80"),
				},
			},
			{
				ID:          "smoker",
				Label:       "Do you smoke?",
				Renderer:    schema.RendererRadio,
				VisibleWhen: schema.Conditions{schema.WhenEquals("insuranceType", "life")},
				Props: schema.Props{
					Options: []schema.Option{
						schema.Opt("Yes", "yes"),
						schema.Opt("No", "no"),
					},
				},
				Rules: &schema.RuleSet{Required: "Required"},
			},
			{
				ID:          "coverageAmount",
				Label:       "Coverage Amount (KES)",
				Renderer:    schema.RendererSelect,
				VisibleWhen: schema.Conditions{schema.WhenEquals("insuranceType", "life")},
				Props: schema.Props{
					Data: []schema.Option{
						schema.Opt("1,000,000", 1000000),
						schema.Opt("2,000,000", 2000000),
						schema.Opt("5,000,000", 5000000),
						schema.Opt("10,000,000", 10000000),
					},
				},
				Rules: &schema.RuleSet{Required: "Required"},
			},
			{
				ID:          "familySize",
				Label:       "Number of People to Cover",
				Renderer:    schema.RendererNumber,
				VisibleWhen: schema.Conditions{schema.WhenEquals("insuranceType", "health")},
				Props:       schema.Props{Min: schema.Number(1), Max: schema.Number(10)},
				Rules:       &schema.RuleSet{Required: "Required"},
			},
			{
				ID:          "preExistingConditions",
				Label:       "Any pre-existing conditions?",
				Renderer:    schema.RendererRadio,
				VisibleWhen: schema.Conditions{schema.WhenEquals("insuranceType", "health")},
				Props: schema.Props{
					Options: []schema.Option{
						schema.Opt("Yes", "yes"),
						schema.Opt("No", "no"),
					},
				},
				Rules: &schema.RuleSet{Required: "Required"},
			},
			{
				ID:       "conditionDetails",
				Label:    "Please specify conditions",
				Renderer: schema.RendererTextArea,
				VisibleWhen: schema.Conditions{
					schema.WhenEquals("insuranceType", "health"),
					schema.WhenEquals("preExistingConditions", "yes"),
				},
				Props: schema.Props{MinRows: 3},
				Rules: &schema.RuleSet{Required: "Required"},
			},
			{
				ID:       "fullName",
				Label:    "Full Name",
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
		},
		Layout: []schema.LayoutNode{
			schema.Section("Insurance Type", true,
				schema.FieldRef("insuranceType"),
			),
			schema.Section("Details", true,
				schema.Grid(2, schema.SpacingMD,
					schema.FieldRef("vehicleType"),
					schema.FieldRef("vehicleAge"),
					schema.FieldSpan("hasAccidents", 2),
					schema.FieldRef("accidentCount"),
					schema.FieldRef("propertyType"),
					schema.FieldRef("propertyValue"),
					schema.FieldSpan("hasSecuritySystem", 2),
					schema.FieldRef("age"),
					schema.FieldRef("smoker"),
					schema.FieldSpan("coverageAmount", 2),
					schema.FieldRef("familySize"),
					schema.FieldRef("preExistingConditions"),
					schema.FieldSpan("conditionDetails", 2),
				),
			),
			schema.Section("Contact Information", true,
				schema.Grid(3, schema.SpacingMD,
					schema.FieldRef("fullName"),
					schema.FieldRef("email"),
					schema.FieldRef("phone"),
				),
			),
		},
	}
}
