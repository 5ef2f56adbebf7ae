package models

// Source tags the origin of a resolved value. It is pure provenance: the
// merger uses it to order precedence and to record where a value came
// from, never as a merge key.
type Source string

const (
	// SourceGeneral is the baseline process environment handed to the
	// resolver by its caller.
	SourceGeneral Source = "general"

	// SourceAccount is the account-wide (shared) remote scope.
	SourceAccount Source = "account"

	// SourceAddons covers values injected by provisioned add-ons.
	SourceAddons Source = "addons"

	// SourceUI is the site-level remote scope, named after the dashboard
	// where such values are managed.
	SourceUI Source = "ui"

	// SourceConfigFile covers values declared in the site's config file.
	// Config-file values only apply to build and post-processing stages.
	SourceConfigFile Source = "configFile"
)
