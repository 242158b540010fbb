package archive

// CollectValues exposes collectValues to the external test package.
var CollectValues = collectValues
