package main

// @title Fire Monitor API
// @version 1.0
// @description Finds the nearest active, uncontained wildfire to a postal code using the NIFC incident feed.

// @contact.name API Support
// @contact.email support@example.com

// @host localhost:8080
// @BasePath /
