package adapters_test

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	adaptconfig "github.com/rafaelleal24/fastfood-express/internal/adapters/config"
	"github.com/rafaelleal24/fastfood-express/internal/adapters/mongo/repository"
	adaptrabbitmq "github.com/rafaelleal24/fastfood-express/internal/adapters/rabbitmq"
	adaptredis "github.com/rafaelleal24/fastfood-express/internal/adapters/redis"
	"github.com/rafaelleal24/fastfood-express/internal/core/domain"
	"github.com/rafaelleal24/fastfood-express/internal/core/dto"
	"github.com/rafaelleal24/fastfood-express/internal/core/service"
	"github.com/rafaelleal24/fastfood-express/internal/core/serviceerrors"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	tcrabbit "github.com/testcontainers/testcontainers-go/modules/rabbitmq"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	mongoClient  *mongo.Client
	redisClient  *adaptredis.Client
	broker       *adaptrabbitmq.RabbitMQAdapter
	amqpEndpoint string
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	mongoContainer, err := mongodb.Run(ctx, "mongo:7")
	if err != nil {
		log.Fatalf("mongodb container: %v", err)
	}
	mongoEndpoint, err := mongoContainer.ConnectionString(ctx)
	if err != nil {
		log.Fatalf("mongodb connection string: %v", err)
	}
	mongoClient, err = mongo.Connect(ctx, options.Client().
		ApplyURI(mongoEndpoint).
		SetDirect(true).
		SetConnectTimeout(30*time.Second).
		SetServerSelectionTimeout(30*time.Second))
	if err != nil {
		log.Fatalf("mongodb connect: %v", err)
	}
	if err := mongoClient.Ping(ctx, nil); err != nil {
		log.Fatalf("mongodb ping: %v", err)
	}

	// --- Redis ---
	redisContainer, err := tcredis.Run(ctx, "redis:7-alpine")
	if err != nil {
		log.Fatalf("redis container: %v", err)
	}
	redisEndpoint, err := redisContainer.ConnectionString(ctx)
	if err != nil {
		log.Fatalf("redis connection string: %v", err)
	}
	redisClient, err = adaptredis.NewConnection(adaptconfig.RedisConfig{URL: redisEndpoint})
	if err != nil {
		log.Fatalf("redis connect: %v", err)
	}

	// --- RabbitMQ ---
	rabbitContainer, err := tcrabbit.Run(ctx, "rabbitmq:3-management-alpine")
	if err != nil {
		log.Fatalf("rabbitmq container: %v", err)
	}
	amqpEndpoint, err = rabbitContainer.AmqpURL(ctx)
	if err != nil {
		log.Fatalf("rabbitmq amqp url: %v", err)
	}
	broker, err = adaptrabbitmq.NewRabbitMQAdapter(adaptconfig.RabbitMQConfig{
		URL:        amqpEndpoint,
		MaxRetries: 2,
		RetryDelay: 100 * time.Millisecond,
		Exchange:   adaptconfig.ExchangeConfig{Name: "exchange.order", Type: "direct", Durable: true},
	})
	if err != nil {
		log.Fatalf("rabbitmq adapter: %v", err)
	}

	code := m.Run()

	_ = broker.Close()
	_ = redisClient.Close()
	_ = mongoClient.Disconnect(ctx)
	_ = mongoContainer.Terminate(ctx)
	_ = redisContainer.Terminate(ctx)
	_ = rabbitContainer.Terminate(ctx)

	os.Exit(code)
}

func setupConsumer(t *testing.T, routingKey string) <-chan amqp.Delivery {
	t.Helper()

	conn, err := amqp.Dial(amqpEndpoint)
	if err != nil {
		t.Fatalf("consumer dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	ch, err := conn.Channel()
	if err != nil {
		t.Fatalf("consumer channel: %v", err)
	}
	t.Cleanup(func() { ch.Close() })

	q, err := ch.QueueDeclare("", false, true, true, false, nil)
	if err != nil {
		t.Fatalf("queue declare: %v", err)
	}
	if err := ch.QueueBind(q.Name, routingKey, "exchange.order", false, nil); err != nil {
		t.Fatalf("queue bind: %v", err)
	}

	msgs, err := ch.Consume(q.Name, "", true, false, false, false, nil)
	if err != nil {
		t.Fatalf("consume: %v", err)
	}
	return msgs
}

type services struct {
	cart  *service.CartService
	order *service.OrderService
}

func buildServices(t *testing.T, name string) services {
	t.Helper()
	ctx := context.Background()

	menuService := service.NewMenuService(repository.NewMenuRepository(mongoClient.Database(name)))
	_, err := menuService.Load(ctx, []domain.MenuItem{
		domain.NewMenuItem("Zinger Burger", 300, "images/zinger-burger.jpg"),
		domain.NewMenuItem("Fries", 150, "images/fries.jpg"),
		domain.NewMenuItem("Pizza Slice", 250, "images/pizza-slice.jpg"),
		domain.NewMenuItem("Drink", 80, "images/drink.jpg"),
	})
	if err != nil {
		t.Fatalf("load menu: %v", err)
	}

	cartStore := adaptredis.NewCache[domain.Cart](redisClient, name)
	idempotencyCache := adaptredis.NewCache[service.IdempotencyEntry[domain.OrderMessage]](redisClient, name)

	cartService := service.NewCartService(cartStore, menuService, time.Hour)
	idempotencyService := service.NewIdempotencyService(idempotencyCache, 5*time.Minute, 100*time.Millisecond, 5*time.Second)
	composer := domain.NewOrderComposer("https://wa.me", "923133850871", domain.LinkEncodingMinimal)

	return services{
		cart:  cartService,
		order: service.NewOrderService(cartService, composer, broker, idempotencyService),
	}
}

func TestIntegration_SubmitOrder_FullCycle(t *testing.T) {
	msgs := setupConsumer(t, "order.link_composed")
	svc := buildServices(t, "int_full_cycle")
	ctx := context.Background()
	session := domain.NewSessionID()

	for _, name := range []string{"Zinger Burger", "Fries", "Zinger Burger"} {
		if _, err := svc.cart.AddItem(ctx, session, name); err != nil {
			t.Fatalf("add %s: %v", name, err)
		}
	}

	message, err := svc.order.SubmitOrder(ctx, session, "", &dto.SubmitOrderRequest{
		CustomerName: "Ali",
		PhoneNumber:  "923001234567",
		Note:         "extra ketchup",
	})
	if err != nil {
		t.Fatalf("submit order: %v", err)
	}

	wantText := "Order Summary:\n- Zinger Burger × 2 = Rs. 600\n- Fries × 1 = Rs. 150\n\nTotal: Rs. 750\nCustomer: Ali\nContact: 923001234567\nInstructions: extra ketchup"
	if message.Text != wantText {
		t.Fatalf("unexpected message:\n%s", message.Text)
	}

	select {
	case msg := <-msgs:
		var event domain.OrderLinkComposedEvent
		if err := json.Unmarshal(msg.Body, &event); err != nil {
			t.Fatalf("unmarshal event: %v", err)
		}
		if event.SessionID != session {
			t.Fatalf("event session: expected %s, got %s", session, event.SessionID)
		}
		if event.Link != message.Link {
			t.Fatalf("event link: expected %s, got %s", message.Link, event.Link)
		}
		if event.GrandTotal != 750 {
			t.Fatalf("event total: expected 750, got %d", event.GrandTotal)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("timed out waiting for order.link_composed event")
	}

	cart, err := svc.cart.GetCart(ctx, session)
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	if cart.ItemCount() != 3 {
		t.Fatalf("expected cart to be kept after submit, got %d items", cart.ItemCount())
	}
}

func TestIntegration_SubmitOrder_Idempotency(t *testing.T) {
	msgs := setupConsumer(t, "order.link_composed")
	svc := buildServices(t, "int_idempotency")
	ctx := context.Background()
	session := domain.NewSessionID()

	if _, err := svc.cart.AddItem(ctx, session, "Pizza Slice"); err != nil {
		t.Fatalf("add item: %v", err)
	}

	request := &dto.SubmitOrderRequest{CustomerName: "Sara", PhoneNumber: "923211234567"}
	first, err := svc.order.SubmitOrder(ctx, session, "click-1", request)
	if err != nil {
		t.Fatalf("first submit: %v", err)
	}
	second, err := svc.order.SubmitOrder(ctx, session, "click-1", request)
	if err != nil {
		t.Fatalf("second submit: %v", err)
	}
	if first.Link != second.Link {
		t.Fatalf("expected same link: %s vs %s", first.Link, second.Link)
	}

	<-msgs
	select {
	case <-msgs:
		t.Fatal("expected a single published event")
	case <-time.After(500 * time.Millisecond):
	}

	// same key, different cart
	if _, err := svc.cart.AddItem(ctx, session, "Drink"); err != nil {
		t.Fatalf("add item: %v", err)
	}
	_, err = svc.order.SubmitOrder(ctx, session, "click-1", request)
	if !serviceerrors.IsOfKind(err, serviceerrors.KindUnprocessableEntity) {
		t.Fatalf("expected payload mismatch, got %v", err)
	}
}

func TestIntegration_SubmitOrder_EmptyCart(t *testing.T) {
	svc := buildServices(t, "int_empty_cart")

	_, err := svc.order.SubmitOrder(context.Background(), domain.NewSessionID(), "", &dto.SubmitOrderRequest{
		CustomerName: "Ali",
		PhoneNumber:  "923001234567",
	})
	if serviceerrors.CodeOf(err) != string(domain.ValidationEmptyCart) {
		t.Fatalf("expected empty_cart, got %v", err)
	}
}

func TestIntegration_EndSession(t *testing.T) {
	svc := buildServices(t, "int_end_session")
	ctx := context.Background()
	session := domain.NewSessionID()

	if _, err := svc.cart.AddItem(ctx, session, "Fries"); err != nil {
		t.Fatalf("add item: %v", err)
	}
	if err := svc.cart.EndSession(ctx, session); err != nil {
		t.Fatalf("end session: %v", err)
	}

	cart, err := svc.cart.GetCart(ctx, session)
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	if !cart.IsEmpty() {
		t.Fatal("expected empty cart after session end")
	}
}
