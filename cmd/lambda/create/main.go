package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"

	"product-catalog-api/internal/handlers"
	"product-catalog-api/pkg/lambda"
)

func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	container, err := lambda.GetConnectionManager().GetContainer(ctx)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	productHandler := handlers.NewProductHandler(container.ProductService)

	resp, err := productHandler.HandleCreate(ctx, lambda.FromAPIGatewayRequest(event))
	if err != nil {
		// Record store faults leave the function as invocation errors
		return events.APIGatewayProxyResponse{}, err
	}

	return lambda.ToAPIGatewayResponse(resp), nil
}

func main() {
	awslambda.Start(handler)
}
