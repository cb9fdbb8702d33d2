package schemas

import (
	"time"

	"github.com/goliatone/go-schemaform/pkg/schema"
)

// Product branches on category: electronics, clothing, and food each reveal
// their own detail fields, and a discount toggle gates the percentage.
func Product() *schema.FormSchema {
	return &schema.FormSchema{
		ID: "product-form",
		Meta: schema.Meta{
			Title:    "Add Product",
			Subtitle: "Fill in product details",
		},
		Fields: schema.FieldList{
			{
				ID:       "productName",
				Label:    "Product Name",
				Renderer: schema.RendererText,
				Rules:    &schema.RuleSet{Required: "Product name is required"},
			},
			{
				ID:       "category",
				Label:    "Category",
				Renderer: schema.RendererSelect,
				Props: schema.Props{
					Data: []schema.Option{
						schema.Opt("Electronics", "electronics"),
						schema.Opt("Clothing", "clothing"),
						schema.Opt("Food", "food"),
						schema.Opt("Books", "books"),
					},
				},
				Rules: &schema.RuleSet{Required: "Category is required"},
			},
			{
				ID:          "brand",
				Label:       "Brand",
				Renderer:    schema.RendererText,
				VisibleWhen: schema.Conditions{schema.WhenEquals("category", "electronics")},
				Rules:       &schema.RuleSet{Required: "Brand is required for electronics"},
			},
			{
				ID:          "warrantyPeriod",
				Label:       "Warranty Period (months)",
				Renderer:    schema.RendererNumber,
				VisibleWhen: schema.Conditions{schema.WhenEquals("category", "electronics")},
				Props:       schema.Props{Min: schema.Number(0), Max: schema.Number(60)},
			},
			{
				ID:          "size",
				Label:       "Size",
				Renderer:    schema.RendererSelect,
				VisibleWhen: schema.Conditions{schema.WhenEquals("category", "clothing")},
				Props:       schema.Props{Data: schema.Opts("XS", "S", "M", "L", "XL", "XXL")},
			},
			{
				ID:          "color",
				Label:       "Color",
				Renderer:    schema.RendererMultiSelect,
				VisibleWhen: schema.Conditions{schema.WhenEquals("category", "clothing")},
				Props:       schema.Props{Data: schema.Opts("Red", "Blue", "Green", "Black", "White", "Yellow")},
			},
			{
				ID:          "expiryDate",
				Label:       "Expiry Date",
				Renderer:    schema.RendererDate,
				VisibleWhen: schema.Conditions{schema.WhenEquals("category", "food")},
				Props:       schema.Props{MinDate: schema.Date(time.Now())},
				Rules:       &schema.RuleSet{Required: "Expiry date is required for food items"},
			},
			{
				ID:       "price",
				Label:    "Price (KES)",
				Renderer: schema.RendererNumber,
				Props: schema.Props{
					Min:       schema.Number(0),
					Precision: schema.Int(2),
					Step:      schema.Number(0.01),
				},
				Rules: &schema.RuleSet{
					Required: "Price is required",
					Min:      schema.Min(0, "Price must be positive"),
				},
			},
			{
				ID:       "discountApplied",
				Label:    "Apply Discount",
				Renderer: schema.RendererSwitch,
				Default:  false,
			},
			{
				ID:          "discountPercentage",
				Label:       "Discount Percentage",
				Renderer:    schema.RendererNumber,
				VisibleWhen: schema.Conditions{schema.WhenEquals("discountApplied", true)},
				Props: schema.Props{
					Min:    schema.Number(0),
					Max:    schema.Number(100),
					Suffix: "%",
				},
				Rules: &schema.RuleSet{
					Required: "Discount percentage is required",
					Min:      schema.Min(1, "Discount must be at least 1%"),
					Max:      schema.Max(90, "Discount cannot exceed 90%"),
				},
			},
			{
				ID:       "stock",
				Label:    "Stock Quantity",
				Renderer: schema.RendererNumber,
				Props:    schema.Props{Min: schema.Number(0)},
				Rules: &schema.RuleSet{
					Required: "Stock quantity is required",
					Min:      schema.Min(0, "Stock cannot be negative"),
				},
			},
			{
				ID:       "description",
				Label:    "Description",
				Renderer: schema.RendererTextArea,
				Props:    schema.Props{MinRows: 4},
			},
			{
				ID:       "featured",
				Label:    "Feature this product",
				Renderer: schema.RendererCheckbox,
				Default:  false,
			},
		},
		Layout: []schema.LayoutNode{
			schema.Section("Basic Information", true,
				schema.Grid(2, schema.SpacingMD,
					schema.FieldRef("productName"),
					schema.FieldRef("category"),
				),
			),
			schema.CollapsibleSection("Category-Specific Details", true,
				schema.Grid(2, schema.SpacingMD,
					schema.FieldRef("brand"),
					schema.FieldRef("warrantyPeriod"),
					schema.FieldRef("size"),
					schema.FieldRef("color"),
					schema.FieldRef("expiryDate"),
				),
			),
			schema.Section("Pricing & Inventory", true,
				schema.Grid(3, schema.SpacingMD,
					schema.FieldRef("price"),
					schema.FieldRef("stock"),
					schema.FieldRef("discountApplied"),
					schema.FieldSpan("discountPercentage", 2),
				),
			),
			schema.Section("Additional Information", false,
				schema.Stack(schema.SpacingMD,
					schema.FieldRef("description"),
					schema.FieldRef("featured"),
				),
			),
		},
	}
}
