//go:build spiraldebug

package spiral

const debugAssertions = true
