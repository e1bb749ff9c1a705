package service

import (
	"context"
	"fmt"

	"github.com/samandr77/microservices/mro/internal/entity"
)

// CurrentWeather proxies the weather provider for any authenticated user.
func (s *Service) CurrentWeather(ctx context.Context, q entity.WeatherQuery) (entity.Weather, error) {
	_, err := entity.PrincipalFromContext(ctx)
	if err != nil {
		return entity.Weather{}, err
	}

	err = q.Validate()
	if err != nil {
		return entity.Weather{}, err
	}

	w, err := s.weather.Current(ctx, q)
	if err != nil {
		return entity.Weather{}, fmt.Errorf("current weather: %w", err)
	}

	return w, nil
}
