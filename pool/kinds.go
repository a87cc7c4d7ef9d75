package pool

import "github.com/albertocavalcante/go-selectable/label"

// Package is an Item known to be of kind package.
type Package struct{ Item }

// Patch is an Item known to be of kind patch.
type Patch struct{ Item }

// IsSecurity reports whether the patch is a security fix.
func (p Patch) IsSecurity() bool {
	return p.Category() == "security"
}

// Product is an Item known to be of kind product.
type Product struct{ Item }

// AsPackage narrows it to a Package.
func AsPackage(it Item) (Package, bool) {
	if narrowed, ok := it.AsKind(label.KindPackage); ok {
		return Package{narrowed}, true
	}
	return Package{}, false
}

// AsPatch narrows it to a Patch.
func AsPatch(it Item) (Patch, bool) {
	if narrowed, ok := it.AsKind(label.KindPatch); ok {
		return Patch{narrowed}, true
	}
	return Patch{}, false
}

// AsProduct narrows it to a Product.
func AsProduct(it Item) (Product, bool) {
	if narrowed, ok := it.AsKind(label.KindProduct); ok {
		return Product{narrowed}, true
	}
	return Product{}, false
}
