// Package assets provides the stylesheets used by HTML previews.
//
// # Loader Architecture
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - built-in styles compiled into the binary
//	    ├── FilesystemLoader  - styles from a custom directory on disk
//	    └── AssetResolver     - custom first, embedded as fallback
//
// A custom directory only needs the styles it overrides:
//
//	{basePath}/
//	└── styles/
//	    └── {name}.css
//
// Style names are validated and FilesystemLoader keeps every resolved
// path, symlinks included, inside basePath.
package assets
