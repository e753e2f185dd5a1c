// Package i18n loads message catalogues and resolves translated strings.
//
// Catalogues are YAML or JSON documents keyed by language code, loaded through
// a TranslationAdapter (in memory, or any fs.FS such as an embedded directory).
// Keys are dotted paths into the nested maps and values may carry named
// placeholders written as %{name}:
//
//	en:
//	  validation:
//	    minlength: "Please enter at least %{min} characters."
//
// A Catalog is the view of one language under a key prefix. It implements the
// message table used by package form, so validation messages come straight
// from the catalogue:
//
//	msgs := form.DeriveMessages(root, translator.Catalog("es", "validation"))
//
// Middleware negotiates the request language (cookie, query parameter, then
// Accept-Language via golang.org/x/text/language) and stores it in the request
// context; GetLocale reads it back.
package i18n
