/*
Package keeptest provides mocks and test doubles for testing keep
extensions. All implementations are kept dependency free, so that this
package can be imported by any test without a risk of an import cycle.
*/
package keeptest
