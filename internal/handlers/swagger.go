package handlers

// @title Product Catalog API
// @version 1.0
// @description A serverless-ready CRUD API for a product catalog backed by a key-value record store

// @contact.name API Support
// @contact.url https://github.com/your-org/product-catalog-api

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8081
// @BasePath /api/v1

// @tag.name products
// @tag.description Product catalog operations
