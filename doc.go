/*

Package keep defines the interfaces used throughout the custody ledger:
storage, messages, handlers and authentication conditions. It also contains
helpers to work with context and addresses. Look into this package to get a
brief overview of the building blocks before diving into the extensions
under x/.

*/

package keep
