// Package product models a merchant's catalog item and its stock level.
package product
