// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package dataview

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var footerPrinter = message.NewPrinter(language.English)

// RangeText renders "{from}-{to} of {n} items"
func (v View) RangeText() string {
	return footerPrinter.Sprintf("%d-%d of %d items", v.FromIndex, v.ToIndex, v.TotalMatched)
}

// Footer renders "{from}-{to} of {n} items  page {p}/{t}  {size} / page"
func (v View) Footer() string {
	return v.RangeText() + footerPrinter.Sprintf("  page %d/%d  %d / page", v.Page, v.TotalPages, v.PageSize)
}
