package resolver

import (
	"strings"

	"dirsight/internal/model"
)

// Static lookup data for the resolver cascade. Matching logic lives in
// resolver.go; everything here is plain data so the tables stay testable
// and presentation strings stay in one place.

// categoryEntry is one canonical mapping in the category dictionary
type categoryEntry struct {
	Purpose  string // canonical display purpose
	Category string // coarse directory category tag
	Noun     string // noun used when building compound purposes
}

// categoryDict maps ~40 directory-name synonyms to one canonical purpose
// each. Every synonym has exactly one entry, so lookups can never tie.
var categoryDict = map[string]categoryEntry{
	"components": {Purpose: "UI components", Category: "component", Noun: "components"},
	"component":  {Purpose: "UI components", Category: "component", Noun: "components"},
	"cmp":        {Purpose: "UI components", Category: "component", Noun: "components"},
	"widgets":    {Purpose: "UI components", Category: "component", Noun: "components"},

	"pages":   {Purpose: "pages", Category: "page", Noun: "pages"},
	"page":    {Purpose: "pages", Category: "page", Noun: "pages"},
	"views":   {Purpose: "pages", Category: "page", Noun: "pages"},
	"screens": {Purpose: "pages", Category: "page", Noun: "pages"},

	"utils":     {Purpose: "utility functions", Category: "utility", Noun: "utilities"},
	"util":      {Purpose: "utility functions", Category: "utility", Noun: "utilities"},
	"utilities": {Purpose: "utility functions", Category: "utility", Noun: "utilities"},
	"helpers":   {Purpose: "utility functions", Category: "utility", Noun: "utilities"},
	"helper":    {Purpose: "utility functions", Category: "utility", Noun: "utilities"},

	"services": {Purpose: "API services", Category: "service", Noun: "services"},
	"service":  {Purpose: "API services", Category: "service", Noun: "services"},
	"api":      {Purpose: "API services", Category: "service", Noun: "API services"},
	"apis":     {Purpose: "API services", Category: "service", Noun: "API services"},

	"hooks": {Purpose: "custom hooks", Category: "hook", Noun: "hooks"},

	"styles": {Purpose: "stylesheets", Category: "other", Noun: "styles"},
	"css":    {Purpose: "stylesheets", Category: "other", Noun: "styles"},
	"themes": {Purpose: "theme definitions", Category: "other", Noun: "themes"},

	"store":  {Purpose: "state management", Category: "other", Noun: "state"},
	"stores": {Purpose: "state management", Category: "other", Noun: "state"},
	"state":  {Purpose: "state management", Category: "other", Noun: "state"},

	"types":      {Purpose: "type definitions", Category: "type", Noun: "types"},
	"typings":    {Purpose: "type definitions", Category: "type", Noun: "types"},
	"interfaces": {Purpose: "type definitions", Category: "type", Noun: "types"},

	"models":   {Purpose: "data models", Category: "model", Noun: "models"},
	"model":    {Purpose: "data models", Category: "model", Noun: "models"},
	"entities": {Purpose: "data models", Category: "model", Noun: "models"},
	"schemas":  {Purpose: "data models", Category: "model", Noun: "schemas"},

	"controllers": {Purpose: "controllers", Category: "service", Noun: "controllers"},
	"controller":  {Purpose: "controllers", Category: "service", Noun: "controllers"},

	"repositories": {Purpose: "data repositories", Category: "service", Noun: "repositories"},
	"repository":   {Purpose: "data repositories", Category: "service", Noun: "repositories"},
	"dao":          {Purpose: "data repositories", Category: "service", Noun: "repositories"},

	"routes":  {Purpose: "routing", Category: "route", Noun: "routes"},
	"routing": {Purpose: "routing", Category: "route", Noun: "routes"},
	"router":  {Purpose: "routing", Category: "route", Noun: "routes"},

	"middleware":  {Purpose: "middleware", Category: "service", Noun: "middleware"},
	"middlewares": {Purpose: "middleware", Category: "service", Noun: "middleware"},

	"layouts": {Purpose: "layout components", Category: "component", Noun: "layouts"},
	"layout":  {Purpose: "layout components", Category: "component", Noun: "layouts"},

	"features": {Purpose: "feature modules", Category: "feature", Noun: "features"},
	"feature":  {Purpose: "feature modules", Category: "feature", Noun: "features"},
	"modules":  {Purpose: "feature modules", Category: "feature", Noun: "modules"},

	"shared": {Purpose: "shared code", Category: "shared", Noun: "shared code"},
	"common": {Purpose: "shared code", Category: "shared", Noun: "shared code"},
	"core":   {Purpose: "core logic", Category: "shared", Noun: "core logic"},

	"config":        {Purpose: "configuration", Category: "other", Noun: "configuration"},
	"configs":       {Purpose: "configuration", Category: "other", Noun: "configuration"},
	"configuration": {Purpose: "configuration", Category: "other", Noun: "configuration"},

	"tests":     {Purpose: "test suites", Category: "other", Noun: "tests"},
	"test":      {Purpose: "test suites", Category: "other", Noun: "tests"},
	"__tests__": {Purpose: "test suites", Category: "other", Noun: "tests"},
	"e2e":       {Purpose: "end-to-end tests", Category: "other", Noun: "tests"},

	"constants": {Purpose: "constants", Category: "utility", Noun: "constants"},
	"consts":    {Purpose: "constants", Category: "utility", Noun: "constants"},

	"lib":  {Purpose: "library code", Category: "utility", Noun: "library code"},
	"libs": {Purpose: "library code", Category: "utility", Noun: "library code"},

	"assets": {Purpose: "static assets", Category: "other", Noun: "assets"},
	"static": {Purpose: "static assets", Category: "other", Noun: "assets"},

	"mocks":    {Purpose: "mock data", Category: "other", Noun: "mocks"},
	"fixtures": {Purpose: "mock data", Category: "other", Noun: "fixtures"},

	"locales":      {Purpose: "internationalization resources", Category: "other", Noun: "locales"},
	"i18n":         {Purpose: "internationalization resources", Category: "other", Noun: "locales"},
	"translations": {Purpose: "internationalization resources", Category: "other", Noun: "locales"},

	"contexts":  {Purpose: "context providers", Category: "shared", Noun: "contexts"},
	"context":   {Purpose: "context providers", Category: "shared", Noun: "contexts"},
	"providers": {Purpose: "context providers", Category: "shared", Noun: "providers"},

	"docs":    {Purpose: "documentation", Category: "other", Noun: "docs"},
	"scripts": {Purpose: "build and tooling scripts", Category: "other", Noun: "scripts"},
}

// containerNames never receive a purpose of their own. They still appear in
// the hierarchy and their children still inherit through them.
var containerNames = map[string]bool{
	"src":              true,
	"source":           true,
	"app":              false, // meaningful under Next.js; never suppress
	"dist":             true,
	"build":            true,
	"out":              true,
	"output":           true,
	"target":           true,
	"node_modules":     true,
	"vendor":           true,
	"bower_components": true,
	".next":            true,
	".nuxt":            true,
	"coverage":         true,
	".git":             true,
}

// genericNames are basenames too vague to carry meaning on their own; the
// ancestor walk skips them and Stage 4 refuses to take them at face value.
// Container names are generic by definition.
var genericNames = map[string]bool{
	"misc":  true,
	"etc":   true,
	"stuff": true,
	"tmp":   true,
	"temp":  true,
	"files": true,
	"other": true,
	"new":   true,
	"data":  true,
}

// specialPath is one Stage 0 override: unambiguous conventions that bypass
// the whole cascade
type specialPath struct {
	Basename   string // exact basename match, empty to skip
	PathSubstr string // substring of the full slash-path, empty to skip
	Purpose    string
	Category   string
}

var specialPaths = []specialPath{
	{Basename: "proto", Purpose: "protocol definitions", Category: "other"},
	{Basename: "protos", Purpose: "protocol definitions", Category: "other"},
	{Basename: "protobuf", Purpose: "protocol definitions", Category: "other"},
	{Basename: "__mocks__", Purpose: "mock data", Category: "other"},
	{Basename: "mock-data", Purpose: "mock data", Category: "other"},
	{PathSubstr: "public/images", Purpose: "static image assets", Category: "other"},
	{PathSubstr: "public/img", Purpose: "static image assets", Category: "other"},
	{PathSubstr: "public/fonts", Purpose: "font assets", Category: "other"},
	{PathSubstr: "public/icons", Purpose: "icon assets", Category: "other"},
	{PathSubstr: "public/static", Purpose: "static assets", Category: "other"},
}

// IsContainer reports whether a basename is a structural container name
func IsContainer(base string) bool {
	return containerNames[strings.ToLower(base)]
}

// isGeneric reports whether a basename is too vague to resolve on its own
func isGeneric(base string) bool {
	lower := strings.ToLower(base)
	return containerNames[lower] || genericNames[lower]
}

// lookupCategory returns the dictionary entry for a basename, if any
func lookupCategory(base string) (categoryEntry, bool) {
	entry, ok := categoryDict[strings.ToLower(base)]
	return entry, ok
}

// matchSpecialPath returns the Stage 0 override for a path, if any
func matchSpecialPath(dirPath, base string) (specialPath, bool) {
	lowerPath := strings.ToLower(dirPath)
	lowerBase := strings.ToLower(base)
	for _, sp := range specialPaths {
		if sp.Basename != "" && sp.Basename == lowerBase {
			return sp, true
		}
		if sp.PathSubstr != "" && strings.Contains(lowerPath, sp.PathSubstr) {
			return sp, true
		}
	}
	return specialPath{}, false
}

// functionWord maps a dominant file type to the noun used in compound
// purposes. Unmapped types return an empty word.
func functionWord(cat model.FileCategory) string {
	switch cat {
	case model.FileComponent:
		return "components"
	case model.FilePage:
		return "pages"
	case model.FileService:
		return "API services"
	case model.FileUtility:
		return "utilities"
	case model.FileHook:
		return "hooks"
	case model.FileModel:
		return "models"
	}
	return ""
}
