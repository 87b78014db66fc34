package config

import (
    "fmt"
    "time"

    "github.com/patrickmn/go-cache"
)

var (
    // StationCache holds the dropdown lists (stations, sources).
    StationCache *cache.Cache
    // RouteCache holds per-source destination lists.
    RouteCache *cache.Cache
)

const (
    // Train data only changes on a reseed, so dropdown data can live
    // long; reseeds flush explicitly.
    stationCacheDuration = 6 * time.Hour
    routeCacheDuration   = 1 * time.Hour

    stationCleanupInterval = 12 * time.Hour
    routeCleanupInterval   = 2 * time.Hour
)

func InitCache() {
    StationCache = cache.New(stationCacheDuration, stationCleanupInterval)
    RouteCache = cache.New(routeCacheDuration, routeCleanupInterval)
}

func ClearAllCaches() {
    if StationCache != nil {
        StationCache.Flush()
    }
    if RouteCache != nil {
        RouteCache.Flush()
    }
}

func GetCacheKey(prefix string, params ...interface{}) string {
    key := prefix
    for _, param := range params {
        key += ":" + fmt.Sprintf("%v", param)
    }
    return key
}
