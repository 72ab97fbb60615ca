package pagination

// PageDefaultSize applies when the caller omits a page size.
const PageDefaultSize = 50

// PageMaxSize caps the page size a caller may request.
const PageMaxSize = 200
