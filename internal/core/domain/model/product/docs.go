// Package product holds the catalog's view of a sellable product: its current
// price, its stock, and whether it is on sale. Orders copy name and price from
// here at creation time and adjust stock through StockAdjustment.
package product
