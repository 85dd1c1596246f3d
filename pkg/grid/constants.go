// Package grid provides the layout plugins of the page builder: containers,
// rows and columns built on the framework's 12-column grid.
package grid

import "github.com/goliatone/go-frontend/pkg/form"

// Size is the number of columns in the grid.
const Size = 12

// Plugin names.
const (
	ContainerName = "GridContainer"
	RowName       = "GridRow"
	ColumnName    = "GridColumn"
)

// ContainerFull renders without a container class.
const ContainerFull = "container-full"

// ContainerChoices lists container widths.
var ContainerChoices = []form.Choice{
	{Value: "container", Label: "Container"},
	{Value: "container-fluid", Label: "Fluid container"},
	{Value: ContainerFull, Label: "Full container"},
}

// RowVerticalAlignmentChoices aligns columns on the cross axis.
var RowVerticalAlignmentChoices = []form.Choice{
	{Value: "align-items-start", Label: "Align items start"},
	{Value: "align-items-center", Label: "Align items center"},
	{Value: "align-items-end", Label: "Align items end"},
}

// RowHorizontalAlignmentChoices distributes columns on the main axis.
var RowHorizontalAlignmentChoices = []form.Choice{
	{Value: "justify-content-start", Label: "Justify content start"},
	{Value: "justify-content-center", Label: "Justify content center"},
	{Value: "justify-content-end", Label: "Justify content end"},
	{Value: "justify-content-between", Label: "Justify content between"},
	{Value: "justify-content-around", Label: "Justify content around"},
}

// ColumnAlignmentChoices aligns a single column.
var ColumnAlignmentChoices = []form.Choice{
	{Value: "align-self-start", Label: "Align self start"},
	{Value: "align-self-center", Label: "Align self center"},
	{Value: "align-self-end", Label: "Align self end"},
}

// ColumnTypeCol is the auto-width column type.
const ColumnTypeCol = "col"

// ColumnChoices lists column types. "w-100" forces a line break.
var ColumnChoices = []form.Choice{
	{Value: ColumnTypeCol, Label: "Column"},
	{Value: "w-100", Label: "Break"},
}

// ColorStyleChoices lists the framework's contextual colours.
var ColorStyleChoices = []form.Choice{
	{Value: "primary", Label: "Primary"},
	{Value: "secondary", Label: "Secondary"},
	{Value: "success", Label: "Success"},
	{Value: "danger", Label: "Danger"},
	{Value: "warning", Label: "Warning"},
	{Value: "info", Label: "Info"},
	{Value: "light", Label: "Light"},
	{Value: "dark", Label: "Dark"},
}

// TagChoices lists wrapper elements an item may render as.
var TagChoices = []form.Choice{
	{Value: "div", Label: "div"},
	{Value: "section", Label: "section"},
	{Value: "article", Label: "article"},
	{Value: "header", Label: "header"},
	{Value: "footer", Label: "footer"},
	{Value: "aside", Label: "aside"},
}

func withEmpty(choices []form.Choice) []form.Choice {
	return append([]form.Choice{form.EmptyChoice}, choices...)
}

const (
	docsVerticalAlignment   = "https://getbootstrap.com/docs/5.0/layout/grid/#vertical-alignment"
	docsHorizontalAlignment = "https://getbootstrap.com/docs/5.0/layout/grid/#horizontal-alignment"
)
