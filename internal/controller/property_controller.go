package controller

import (
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Semavi7/who-estate-backend-different/internal/model"
	"github.com/Semavi7/who-estate-backend-different/pkg/database"
	"github.com/Semavi7/who-estate-backend-different/pkg/timeseries"
	"github.com/Semavi7/who-estate-backend-different/pkg/utils/jwt"
	"github.com/Semavi7/who-estate-backend-different/pkg/utils/location"
	"github.com/Semavi7/who-estate-backend-different/pkg/utils/storage"
)

// Sorguda sayısal eşleşme yapılan alanlar
var numericQueryFields = map[string]bool{
	"price":             true,
	"gross":             true,
	"net":               true,
	"buildingAge":       true,
	"floor":             true,
	"numberOfFloors":    true,
	"numberOfBathrooms": true,
	"dues":              true,
}

// BuildQueryFilter query parametrelerinden AND'lenmiş bir Mongo filtresi kurar.
// city/district/neighborhood location alt alanlarına, min/max öneki aralık
// sorgusuna, bilinen sayısal alanlar tam sayı eşleşmesine çevrilir; kalan her
// parametre birebir string eşleşmesidir.
func BuildQueryFilter(params map[string]string) bson.M {
	filter := bson.M{}

	rangeBound := func(field string, op string, value string) {
		n, err := strconv.Atoi(value)
		if err != nil {
			return
		}
		bounds, ok := filter[field].(bson.M)
		if !ok {
			bounds = bson.M{}
		}
		bounds[op] = n
		filter[field] = bounds
	}

	for key, value := range params {
		switch {
		case key == "city" || key == "district" || key == "neighborhood":
			filter["location."+key] = value
		case key == "minPrice":
			rangeBound("price", "$gte", value)
		case key == "maxPrice":
			rangeBound("price", "$lte", value)
		case key == "minNet":
			rangeBound("net", "$gte", value)
		case key == "maxNet":
			rangeBound("net", "$lte", value)
		case numericQueryFields[key]:
			if n, err := strconv.Atoi(value); err == nil {
				filter[key] = n
			}
		default:
			filter[key] = value
		}
	}

	return filter
}

// parseLocation form alanındaki JSON'u çözer ve geo tipini normalize eder
func parseLocation(raw string) (model.Location, error) {
	var loc model.Location
	if err := json.Unmarshal([]byte(raw), &loc); err != nil {
		return loc, err
	}
	if len(loc.Geo.Coordinates) != 2 {
		return loc, fmt.Errorf("geo.coordinates must be [lon, lat]")
	}
	if loc.Geo.Type == "" {
		loc.Geo.Type = "Point"
	}
	return loc, nil
}

func parseSelectedFeatures(raw string) (map[string][]string, error) {
	features := map[string][]string{}
	if raw == "" {
		return features, nil
	}
	if err := json.Unmarshal([]byte(raw), &features); err != nil {
		return nil, err
	}
	return features, nil
}

// attachOwners ilanlara sahiplerinin public profilini ekler.
// Kullanıcı bulunamazsa user alanı null kalır, istek düşmez.
func attachOwners(c *fiber.Ctx, properties []model.Property) []model.PropertyWithUser {
	users := database.Collection(database.CollUsers)

	result := make([]model.PropertyWithUser, 0, len(properties))
	for _, p := range properties {
		enriched := model.PropertyWithUser{Property: p}
		if p.UserID != "" {
			if oid, err := primitive.ObjectIDFromHex(p.UserID); err == nil {
				var owner model.User
				if err := users.FindOne(c.Context(), bson.M{"_id": oid}).Decode(&owner); err == nil {
					enriched.User = owner.GetPublicProfile()
				}
			}
		}
		result = append(result, enriched)
	}
	return result
}

// CreateProperty multipart formdan yeni ilan oluşturur. location ve
// selectedFeatures alanları JSON string olarak gelir; images dosyaları
// filigranlanıp yüklenir.
func CreateProperty(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)

	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid multipart form",
		})
	}

	get := func(key string) string {
		if v, ok := form.Value[key]; ok && len(v) > 0 {
			return v[0]
		}
		return ""
	}

	for _, required := range []string{"title", "description", "price", "gross", "net", "propertyType", "listingType", "location"} {
		if get(required) == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": fmt.Sprintf("%s is required", required),
			})
		}
	}

	loc, err := parseLocation(get("location"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid location payload",
		})
	}

	features, err := parseSelectedFeatures(get("selectedFeatures"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid selectedFeatures payload",
		})
	}

	price, err1 := strconv.ParseFloat(get("price"), 64)
	gross, err2 := strconv.ParseFloat(get("gross"), 64)
	net, err3 := strconv.ParseFloat(get("net"), 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "price, gross and net must be numeric",
		})
	}

	atoi := func(key string) int {
		n, _ := strconv.Atoi(get(key))
		return n
	}
	atof := func(key string) float64 {
		f, _ := strconv.ParseFloat(get(key), 64)
		return f
	}

	var imageURLs []string
	if files, ok := form.File["images"]; ok && len(files) > 0 {
		imageURLs, err = storage.GlobalService.UploadPropertyImages(c.Context(), files)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": err.Error(),
			})
		}
	}
	if imageURLs == nil {
		imageURLs = []string{}
	}

	userID := get("userId")
	if userID == "" {
		userID = claims.UserID
	}

	now := time.Now()
	property := model.Property{
		Title:             get("title"),
		Description:       get("description"),
		Price:             price,
		Gross:             gross,
		Net:               net,
		NumberOfRoom:      get("numberOfRoom"),
		BuildingAge:       atoi("buildingAge"),
		Floor:             atoi("floor"),
		NumberOfFloors:    atoi("numberOfFloors"),
		Heating:           get("heating"),
		NumberOfBathrooms: atoi("numberOfBathrooms"),
		Kitchen:           get("kitchen"),
		Balcony:           atoi("balcony"),
		Lift:              get("lift"),
		Parking:           get("parking"),
		Furnished:         get("furnished"),
		Availability:      get("availability"),
		Dues:              atof("dues"),
		EligibleForLoan:   get("eligibleForLoan"),
		TitleDeedStatus:   get("titleDeedStatus"),
		Images:            imageURLs,
		Location:          loc,
		UserID:            userID,
		PropertyType:      get("propertyType"),
		ListingType:       get("listingType"),
		SubType:           get("subType"),
		SelectedFeatures:  features,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	res, err := database.Collection(database.CollProperties).InsertOne(c.Context(), property)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create property",
		})
	}
	property.ID = res.InsertedID.(primitive.ObjectID)

	return c.Status(fiber.StatusCreated).JSON(property)
}

// ListProperties tüm ilanları sahip bilgisiyle listeler
func ListProperties(c *fiber.Ctx) error {
	cursor, err := database.Collection(database.CollProperties).Find(c.Context(), bson.M{})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not fetch properties",
		})
	}

	properties := []model.Property{}
	if err := cursor.All(c.Context(), &properties); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not decode properties",
		})
	}

	return c.JSON(attachOwners(c, properties))
}

// QueryProperties filtreli arama
func QueryProperties(c *fiber.Ctx) error {
	filter := BuildQueryFilter(c.Queries())

	cursor, err := database.Collection(database.CollProperties).Find(c.Context(), filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not fetch properties",
		})
	}

	properties := []model.Property{}
	if err := cursor.All(c.Context(), &properties); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not decode properties",
		})
	}

	return c.JSON(properties)
}

// NearProperties verilen noktaya distance metre içindeki ilanları yakınlık
// sırasıyla döner, sıralamayı 2dsphere index yapar
func NearProperties(c *fiber.Ctx) error {
	lon, err1 := strconv.ParseFloat(c.Query("lon"), 64)
	lat, err2 := strconv.ParseFloat(c.Query("lat"), 64)
	distance, err3 := strconv.ParseFloat(c.Query("distance"), 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "lon, lat and distance are required numeric parameters",
		})
	}

	filter := bson.M{
		"location.geo": bson.M{
			"$nearSphere": bson.M{
				"$geometry": bson.M{
					"type":        "Point",
					"coordinates": []float64{lon, lat},
				},
				"$maxDistance": distance,
			},
		},
	}

	cursor, err := database.Collection(database.CollProperties).Find(c.Context(), filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not fetch properties",
		})
	}

	properties := []model.Property{}
	if err := cursor.All(c.Context(), &properties); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not decode properties",
		})
	}

	return c.JSON(properties)
}

// LastSixProperties anasayfa için en yeni altı ilan
func LastSixProperties(c *fiber.Ctx) error {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(6)

	cursor, err := database.Collection(database.CollProperties).Find(c.Context(), bson.M{}, opts)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not fetch properties",
		})
	}

	properties := []model.Property{}
	if err := cursor.All(c.Context(), &properties); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not decode properties",
		})
	}

	return c.JSON(attachOwners(c, properties))
}

// CountProperties toplam ilan sayısı
func CountProperties(c *fiber.Ctx) error {
	total, err := database.Collection(database.CollProperties).CountDocuments(c.Context(), bson.M{})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not count properties",
		})
	}

	return c.JSON(fiber.Map{"total": total})
}

// YearListings içinde bulunulan yılın aylık ilan sayıları, 12 elemanlı seri
func YearListings(c *fiber.Ctx) error {
	year := time.Now().Year()
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 23, 59, 59, 0, time.UTC)

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"createdAt": bson.M{"$gte": start, "$lte": end},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":   bson.M{"$dateToString": bson.M{"format": "%Y-%m", "date": "$createdAt"}},
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}

	cursor, err := database.Collection(database.CollProperties).Aggregate(c.Context(), pipeline)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not aggregate listings",
		})
	}

	results := []timeseries.MonthCount{}
	if err := cursor.All(c.Context(), &results); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not decode aggregation",
		})
	}

	return c.JSON(timeseries.FillYearCounts(year, results))
}

type pieSlice struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

// PieChart ilan tiplerinin yüzde dağılımı
func PieChart(c *fiber.Ctx) error {
	coll := database.Collection(database.CollProperties)

	total, err := coll.CountDocuments(c.Context(), bson.M{})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not count properties",
		})
	}
	if total == 0 {
		return c.JSON(fiber.Map{"message": "Database boş."})
	}

	countBy := func(field, value string) float64 {
		n, err := coll.CountDocuments(c.Context(), bson.M{
			field: primitive.Regex{Pattern: "^" + value + "$", Options: "i"},
		})
		if err != nil {
			return 0
		}
		return float64(n)
	}

	data := []pieSlice{
		{Name: "Daire", Value: countBy("subType", "Daire") / float64(total) * 100, Color: "#0088FE"},
		{Name: "Villa", Value: countBy("subType", "Villa") / float64(total) * 100, Color: "#00C49F"},
		{Name: "Dükkan", Value: countBy("subType", "Dükkan") / float64(total) * 100, Color: "#FFBB28"},
		{Name: "Arsa", Value: countBy("propertyType", "Arsa") / float64(total) * 100, Color: "#FF8042"},
	}

	return c.JSON(data)
}

// GetCategories ilan form ağacını döner
func GetCategories(c *fiber.Ctx) error {
	return c.JSON(CategoryStructure)
}

// GetAddressData tüm illeri döner
func GetAddressData(c *fiber.Ctx) error {
	return c.JSON(location.GetCities())
}

// GetAddressByCity il koduna göre ilçe ve mahalleleri döner
func GetAddressByCity(c *fiber.Ctx) error {
	return c.JSON(location.GetDistrictsAndNeighbourhoods(c.Params("id")))
}

// GetProperty id ile ilan getirir, sahibini ekler
func GetProperty(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid property ID",
		})
	}

	var property model.Property
	err = database.Collection(database.CollProperties).
		FindOne(c.Context(), bson.M{"_id": id}).Decode(&property)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "İlan Bulunamadı",
		})
	}

	enriched := attachOwners(c, []model.Property{property})
	return c.JSON(enriched[0])
}

// UpdateProperty kısmi güncelleme: yalnızca formda gönderilen alanlar yazılır.
// existingImageUrls korunacak eski resimleri, newImages yeni dosyaları taşır.
func UpdateProperty(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid property ID",
		})
	}

	coll := database.Collection(database.CollProperties)

	var existing model.Property
	if err := coll.FindOne(c.Context(), bson.M{"_id": id}).Decode(&existing); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Bu ıd ye ait kayıt bulunamadı",
		})
	}

	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid multipart form",
		})
	}

	set, err := buildPropertyUpdate(form.Value)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	// Resimler: korunanlar + yeni yüklenenler
	keptRaw, hasKept := formValue(form.Value, "existingImageUrls")
	newFiles := form.File["newImages"]
	if hasKept || len(newFiles) > 0 {
		kept := []string{}
		if hasKept && keptRaw != "" {
			if err := json.Unmarshal([]byte(keptRaw), &kept); err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"message": "Invalid existingImageUrls payload",
				})
			}
		}

		if len(newFiles) > 0 {
			uploaded, err := storage.GlobalService.UploadPropertyImages(c.Context(), newFiles)
			if err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"message": err.Error(),
				})
			}
			kept = append(kept, uploaded...)
		}

		set["images"] = kept
	}

	set["updatedAt"] = time.Now()

	var updated model.Property
	err = coll.FindOneAndUpdate(
		c.Context(),
		bson.M{"_id": id},
		bson.M{"$set": set},
		mongoReturnAfter(),
	).Decode(&updated)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update property",
		})
	}

	return c.JSON(updated)
}

// AssignPropertyUser ilanı başka bir kullanıcıya devreder, yalnızca admin
func AssignPropertyUser(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid property ID",
		})
	}

	var input struct {
		UserID string `json:"userId"`
	}
	if err := c.BodyParser(&input); err != nil || input.UserID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "userId is required",
		})
	}

	var updated model.Property
	err = database.Collection(database.CollProperties).FindOneAndUpdate(
		c.Context(),
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"userId": input.UserID, "updatedAt": time.Now()}},
		mongoReturnAfter(),
	).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Bu ıd ye ait kayıt bulunamadı",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update property",
		})
	}

	return c.JSON(updated)
}

// DeleteProperty ilanı siler
func DeleteProperty(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid property ID",
		})
	}

	coll := database.Collection(database.CollProperties)

	var property model.Property
	if err := coll.FindOne(c.Context(), bson.M{"_id": id}).Decode(&property); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Böyle bir Id bulunamadı",
		})
	}

	if _, err := coll.DeleteOne(c.Context(), bson.M{"_id": id}); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete property",
		})
	}

	// Fotoğraflar ilanla birlikte storage'dan da gider
	for _, img := range property.Images {
		if err := storage.GlobalService.DeleteImage(c.Context(), img); err != nil {
			log.Printf("Could not delete property image: %v", err)
		}
	}

	return c.JSON(fiber.Map{"message": "İlan başarı ile silindi"})
}

func formValue(values map[string][]string, key string) (string, bool) {
	if v, ok := values[key]; ok && len(v) > 0 {
		return v[0], true
	}
	return "", false
}

// buildPropertyUpdate formda gerçekten gönderilen alanlardan $set dokümanı kurar
func buildPropertyUpdate(values map[string][]string) (bson.M, error) {
	set := bson.M{}

	stringFields := []string{
		"title", "description", "numberOfRoom", "heating", "kitchen",
		"lift", "parking", "furnished", "availability", "eligibleForLoan",
		"titleDeedStatus", "propertyType", "listingType", "subType", "userId",
	}
	for _, field := range stringFields {
		if v, ok := formValue(values, field); ok {
			set[field] = v
		}
	}

	floatFields := []string{"price", "gross", "net", "dues"}
	for _, field := range floatFields {
		if v, ok := formValue(values, field); ok {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, fmt.Errorf("%s must be numeric", field)
			}
			set[field] = f
		}
	}

	intFields := []string{"buildingAge", "floor", "numberOfFloors", "numberOfBathrooms", "balcony"}
	for _, field := range intFields {
		if v, ok := formValue(values, field); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return nil, fmt.Errorf("%s must be an integer", field)
			}
			set[field] = n
		}
	}

	if v, ok := formValue(values, "location"); ok {
		loc, err := parseLocation(v)
		if err != nil {
			return nil, fmt.Errorf("invalid location payload")
		}
		set["location"] = loc
	}

	if v, ok := formValue(values, "selectedFeatures"); ok {
		features, err := parseSelectedFeatures(v)
		if err != nil {
			return nil, fmt.Errorf("invalid selectedFeatures payload")
		}
		set["selectedFeatures"] = features
	}

	return set, nil
}
