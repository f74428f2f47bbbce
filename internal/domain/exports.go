package domain

import (
	interfaces "cardreveal/internal/domain/interfaces"
	types "cardreveal/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Kind           = types.Kind
	State          = types.State
	Platform       = types.Platform
	Content        = types.Content
	ImageContent   = types.ImageContent
	TextContent    = types.TextContent
	FeatureContent = types.FeatureContent
	Assignment     = types.Assignment
	Slot           = types.Slot
	Catalog        = types.Catalog
	RevealView     = types.RevealView
	Artifact       = types.Artifact
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	AssetCatalog  = interfaces.AssetCatalog
	Capturer      = interfaces.Capturer
	ArtifactStore = interfaces.ArtifactStore
	Uploader      = interfaces.Uploader
	RNG           = interfaces.RNG
)

const (
	SlotCount   = types.SlotCount
	MaxSelected = types.MaxSelected

	KindImage   = types.KindImage
	KindText    = types.KindText
	KindFeature = types.KindFeature

	StateSelecting = types.StateSelecting
	StateRevealed  = types.StateRevealed

	PlatformX        = types.PlatformX
	PlatformFacebook = types.PlatformFacebook
	PlatformTelegram = types.PlatformTelegram

	DefaultImage   = types.DefaultImage
	DefaultPrompt  = types.DefaultPrompt
	DefaultFeature = types.DefaultFeature
)

// AllKinds lists every kind in canonical assignment order.
var AllKinds = types.AllKinds

// Platforms lists the supported share targets in display order.
var Platforms = types.Platforms

// Fallback returns the fixed value substituted when the list for k is empty.
func Fallback(k Kind) string { return types.Fallback(k) }
